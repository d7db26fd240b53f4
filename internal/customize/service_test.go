package customize

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/charamake/server/internal/data"
	"github.com/charamake/server/internal/icon"
)

// allGroupSheets generates a sheet for every (clan, sex) group with two
// menus apiece.
func allGroupSheets(t *testing.T) *data.CharaMakeTable {
	t.Helper()
	var b strings.Builder
	b.WriteString("sheets:\n")
	for clan := ClanFirst; clan <= ClanLast; clan++ {
		for _, sex := range []Sex{SexMale, SexFemale} {
			fmt.Fprintf(&b, "  - clan: %d\n    sex: %d\n    menus:\n", int(clan), int(sex))
			b.WriteString("      - kind: hair_style\n        type: icon\n        options:\n")
			for v := 1; v <= 3; v++ {
				fmt.Fprintf(&b, "          - {value: %d, icon: %d, names: {en: \"Style %d\"}}\n", v, 2000+v, v)
			}
			b.WriteString("      - kind: eye_color\n        type: color\n        options:\n")
			b.WriteString("          - {value: 10}\n          - {value: 11}\n")
		}
	}
	table, err := data.ParseCharaMakeTable([]byte(b.String()))
	if err != nil {
		t.Fatalf("generate sheets: %v", err)
	}
	return table
}

func testIcons() *icon.Store {
	return icon.NewStore(func(id uint32) ([]byte, error) {
		return []byte{byte(id)}, nil
	})
}

func TestServiceBuildsEverySlotExactlyOnce(t *testing.T) {
	svc := NewService(zap.NewNop(), allGroupSheets(t), nil, testIcons(), language.English)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := svc.Await(ctx); err != nil {
		t.Fatalf("await: %v", err)
	}

	for clan := ClanFirst; clan <= ClanLast; clan++ {
		for _, sex := range []Sex{SexMale, SexFemale} {
			set := svc.Set(clan, sex)
			if set == nil {
				t.Fatalf("%s %s: nil set after completion", clan, sex)
			}
			if set.Clan != clan || set.Sex != sex {
				t.Fatalf("slot mixup: asked %s %s, got %s %s", clan, sex, set.Clan, set.Sex)
			}
			if set.OptionCount() == 0 {
				t.Fatalf("%s %s: empty set", clan, sex)
			}
		}
	}
}

func TestSetBlocksUntilBuildCompletes(t *testing.T) {
	svc := NewService(zap.NewNop(), allGroupSheets(t), nil, testIcons(), language.English)

	// Read before awaiting: must not observe a partial view.
	type result struct{ early, late *Set }
	got := make(chan result, 1)
	go func() {
		early := svc.Set(ClanKeeper, SexFemale)
		late := svc.Set(ClanKeeper, SexFemale)
		got <- result{early, late}
	}()

	select {
	case r := <-got:
		if r.early == nil || r.early != r.late {
			t.Fatalf("pre- and post-completion reads differ: %p vs %p", r.early, r.late)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Set never returned")
	}
}

func TestServicePanicsOnUnknownClan(t *testing.T) {
	svc := NewService(zap.NewNop(), allGroupSheets(t), nil, testIcons(), language.English)
	if err := svc.Await(context.Background()); err != nil {
		t.Fatalf("await: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for ClanUnknown")
		}
	}()
	svc.Set(ClanUnknown, SexMale)
}

func TestServiceFailsSignalOnMissingSheet(t *testing.T) {
	// A table with a single group cannot satisfy all 32 builds; the
	// combined signal must carry the failure.
	partial, err := data.ParseCharaMakeTable([]byte(`
sheets:
  - clan: 1
    sex: 0
    menus: []
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	svc := NewService(zap.NewNop(), partial, nil, testIcons(), language.English)
	if err := svc.Await(context.Background()); err == nil {
		t.Fatal("expected build failure for missing sheets")
	}
}

func TestAwaitHonorsContext(t *testing.T) {
	svc := NewService(zap.NewNop(), allGroupSheets(t), nil, testIcons(), language.English)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := svc.Await(ctx); err != context.Canceled {
		// The build may legitimately have finished already on a fast
		// machine; only a wrong error kind is a failure.
		if err != nil {
			t.Fatalf("await: %v", err)
		}
	}
}

func TestFactoryAddsNPCOnlyOptions(t *testing.T) {
	npcs := &data.NPCAppearanceTable{}
	npcs.Add([]data.NPCAppearance{{
		NpcID: 9001,
		Clan:  int(ClanRaen),
		Sex:   int(SexFemale),
		Customize: map[data.MenuKind]byte{
			data.MenuHairStyle: 250, // not in any sheet
			data.MenuEyeColor:  10,  // already standard
		},
	}})

	svc := NewService(zap.NewNop(), allGroupSheets(t), npcs, testIcons(), language.English)
	if err := svc.Await(context.Background()); err != nil {
		t.Fatalf("await: %v", err)
	}

	set := svc.Set(ClanRaen, SexFemale)
	opt, ok := set.Menu(data.MenuHairStyle).Option(250)
	if !ok || !opt.NPCOnly {
		t.Fatalf("expected NPC-only hair style 250, got %+v (ok=%v)", opt, ok)
	}
	if !set.Validate(data.MenuHairStyle, 250) {
		t.Fatal("NPC-only value must validate")
	}
	// The standard value stays a normal option.
	if opt, _ := set.Menu(data.MenuEyeColor).Option(10); opt.NPCOnly {
		t.Fatal("standard value must not be marked NPC-only")
	}
	// Other groups are untouched.
	if set := svc.Set(ClanRaen, SexMale); set.Validate(data.MenuHairStyle, 250) {
		t.Fatal("NPC option leaked into another group")
	}
}

func TestServiceIconProxy(t *testing.T) {
	svc := NewService(zap.NewNop(), allGroupSheets(t), nil, testIcons(), language.English)
	if ic, ok := svc.Icon(2001); !ok || ic.ID != 2001 {
		t.Fatalf("icon proxy: got %+v (ok=%v)", ic, ok)
	}
}
