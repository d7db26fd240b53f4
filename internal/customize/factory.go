package customize

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/charamake/server/internal/data"
	"github.com/charamake/server/internal/icon"
)

// Factory bakes the shared state every option set draws from: the parsed
// sheets, the NPC appearances bucketed by population group, and the icon
// store. Built exactly once; safe for concurrent CreateSet calls afterwards.
type Factory struct {
	log    *zap.Logger
	icons  *icon.Store
	sheets *data.CharaMakeTable
	lang   language.Tag

	// npcsByGroup is the expensive shared precomputation: one scan of the
	// whole NPC table, bucketed by set index.
	npcsByGroup [NumSets][]*data.NPCAppearance
}

// NewFactory runs the shared precomputation phase.
func NewFactory(sheets *data.CharaMakeTable, npcs *data.NPCAppearanceTable, icons *icon.Store, lang language.Tag, log *zap.Logger) (*Factory, error) {
	if sheets == nil {
		return nil, fmt.Errorf("charamake sheets are required")
	}
	f := &Factory{
		log:    log,
		icons:  icons,
		sheets: sheets,
		lang:   lang,
	}
	if npcs != nil {
		for _, a := range npcs.All() {
			idx, err := setIndex(Clan(a.Clan), Sex(a.Sex))
			if err != nil {
				// Authoring error in the NPC table, not a contract
				// violation of ours; skip and report.
				log.Warn("npc appearance outside any population group",
					zap.Int32("npc_id", a.NpcID),
					zap.Int("clan", a.Clan),
					zap.Int("sex", a.Sex))
				continue
			}
			f.npcsByGroup[idx] = append(f.npcsByGroup[idx], a)
		}
	}
	return f, nil
}

// CreateSet builds the full customization set for one population group.
func (f *Factory) CreateSet(clan Clan, sex Sex) (*Set, error) {
	idx, err := setIndex(clan, sex)
	if err != nil {
		return nil, err
	}
	sheet := f.sheets.Sheet(int(clan), int(sex))
	if sheet == nil {
		return nil, fmt.Errorf("no charamake sheet for %s %s", clan, sex)
	}

	set := &Set{Clan: clan, Sex: sex}
	for _, def := range sheet.Menus {
		menu := &Menu{
			Kind:    def.Kind,
			Type:    def.Type,
			Options: make([]Option, 0, len(def.Options)),
		}
		for _, o := range def.Options {
			if o.Icon != 0 && f.icons != nil {
				if _, ok := f.icons.Icon(o.Icon); !ok {
					f.log.Warn("missing option icon",
						zap.String("menu", string(def.Kind)),
						zap.Uint32("icon", o.Icon))
				}
			}
			menu.Options = append(menu.Options, Option{
				Value: o.Value,
				Icon:  o.Icon,
				Name:  o.Names.For(f.lang),
			})
		}
		set.addMenu(menu)
	}

	f.addNPCOptions(set, idx)
	return set, nil
}

// addNPCOptions appends customize values seen on this group's NPCs but
// absent from the standard sheet as NPC-only options.
func (f *Factory) addNPCOptions(set *Set, idx int) {
	for _, a := range f.npcsByGroup[idx] {
		for kind, value := range a.Customize {
			menu := set.Menu(kind)
			if menu == nil {
				continue
			}
			if _, known := menu.Option(value); known {
				continue
			}
			menu.Options = append(menu.Options, Option{
				Value:   value,
				Name:    fmt.Sprintf("NPC #%d", value),
				NPCOnly: true,
			})
			menu.byValue[value] = len(menu.Options) - 1
		}
	}
}
