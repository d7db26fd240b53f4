package customize

import (
	"github.com/charamake/server/internal/data"
)

// Option is one selectable appearance value within a menu.
type Option struct {
	Value byte
	Icon  uint32
	Name  string
	// NPCOnly marks values seen on NPC appearances but absent from the
	// standard sheets; they are resolvable but not normally selectable.
	NPCOnly bool
}

// Menu is one customization menu of a built set.
type Menu struct {
	Kind    data.MenuKind
	Type    data.MenuType
	Options []Option

	byValue map[byte]int
}

// Option returns the option carrying a value, if the menu defines it.
func (m *Menu) Option(value byte) (Option, bool) {
	idx, ok := m.byValue[value]
	if !ok {
		return Option{}, false
	}
	return m.Options[idx], true
}

// Set is the complete customization option collection for one population
// group. Built once by the factory, read-only afterwards.
type Set struct {
	Clan Clan
	Sex  Sex

	order  []data.MenuKind
	byKind map[data.MenuKind]*Menu
}

// Menu returns the set's menu of a kind, or nil if the group lacks it.
func (s *Set) Menu(kind data.MenuKind) *Menu {
	return s.byKind[kind]
}

// Menus returns all menus in sheet order.
func (s *Set) Menus() []*Menu {
	out := make([]*Menu, 0, len(s.order))
	for _, kind := range s.order {
		out = append(out, s.byKind[kind])
	}
	return out
}

// Validate reports whether a value is defined for a menu kind, including
// NPC-only values.
func (s *Set) Validate(kind data.MenuKind, value byte) bool {
	m := s.byKind[kind]
	if m == nil {
		return false
	}
	_, ok := m.Option(value)
	return ok
}

// OptionCount returns the total option count across all menus.
func (s *Set) OptionCount() int {
	n := 0
	for _, m := range s.byKind {
		n += len(m.Options)
	}
	return n
}

func (s *Set) addMenu(m *Menu) {
	if s.byKind == nil {
		s.byKind = make(map[data.MenuKind]*Menu)
	}
	m.byValue = make(map[byte]int, len(m.Options))
	for i, o := range m.Options {
		m.byValue[o.Value] = i
	}
	if _, exists := s.byKind[m.Kind]; !exists {
		s.order = append(s.order, m.Kind)
	}
	s.byKind[m.Kind] = m
}
