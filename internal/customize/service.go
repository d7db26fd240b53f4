package customize

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/charamake/server/internal/data"
	"github.com/charamake/server/internal/icon"
)

// Service builds and serves the per-population customization sets.
//
// Construction is asynchronous: NewService returns immediately and builds
// the shared factory once, then fans out one goroutine per (clan, sex)
// group. Each goroutine writes only its own slot of the set array, so the
// build needs no locking; the closed done channel is the single barrier
// readers wait on. After it closes the array is read-only.
type Service struct {
	log   *zap.Logger
	icons *icon.Store

	sets [NumSets]*Set
	done chan struct{}
	err  error
}

// NewService starts the one-time build and returns the service handle.
// The build runs to completion once started; ctx only bounds the waiters.
func NewService(log *zap.Logger, sheets *data.CharaMakeTable, npcs *data.NPCAppearanceTable, icons *icon.Store, lang language.Tag) *Service {
	s := &Service{
		log:   log,
		icons: icons,
		done:  make(chan struct{}),
	}
	go s.build(sheets, npcs, lang)
	return s
}

func (s *Service) build(sheets *data.CharaMakeTable, npcs *data.NPCAppearanceTable, lang language.Tag) {
	defer close(s.done)

	factory, err := NewFactory(sheets, npcs, s.icons, lang, s.log)
	if err != nil {
		s.err = fmt.Errorf("build customize factory: %w", err)
		return
	}

	var g errgroup.Group
	for clan := ClanFirst; clan <= ClanLast; clan++ {
		for _, sex := range []Sex{SexMale, SexFemale} {
			clan, sex := clan, sex
			idx, err := setIndex(clan, sex)
			if err != nil {
				// Unreachable with the fixed enumerations above.
				panic(err)
			}
			g.Go(func() error {
				set, err := factory.CreateSet(clan, sex)
				if err != nil {
					return fmt.Errorf("build %s %s set: %w", clan, sex, err)
				}
				s.sets[idx] = set
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		s.err = err
		return
	}
	s.log.Info("customization sets built", zap.Int("sets", NumSets))
}

// Await blocks until every set is built and returns the build error, if
// any. ctx cancellation abandons the wait; the build itself continues.
func (s *Service) Await(ctx context.Context) error {
	select {
	case <-s.done:
		return s.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Set returns the customization set for a population group, blocking until
// the one-time build completes. Once it has, the receive on the closed
// channel is free.
//
// Passing ClanUnknown or an undefined sex is a programming error and
// panics, as does reading from a service whose build failed; callers gate
// startup on Await and its error first.
func (s *Service) Set(clan Clan, sex Sex) *Set {
	idx, err := setIndex(clan, sex)
	if err != nil {
		panic(err)
	}
	<-s.done
	if s.err != nil {
		panic(fmt.Sprintf("customization sets unavailable: %v", s.err))
	}
	return s.sets[idx]
}

// Icon proxies to the icon store. Independent of the set build; callers
// needing built sets still go through Await or Set.
func (s *Service) Icon(id uint32) (*icon.Icon, bool) {
	if s.icons == nil {
		return nil, false
	}
	return s.icons.Icon(id)
}
