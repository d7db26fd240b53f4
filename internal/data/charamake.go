package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MenuKind names one customization menu within an option sheet.
type MenuKind string

const (
	MenuHeight    MenuKind = "height"
	MenuFace      MenuKind = "face"
	MenuHairStyle MenuKind = "hair_style"
	MenuHairColor MenuKind = "hair_color"
	MenuSkinColor MenuKind = "skin_color"
	MenuEyeColor  MenuKind = "eye_color"
	MenuTattoo    MenuKind = "tattoo"
	MenuEarShape  MenuKind = "ear_shape"
	MenuTailShape MenuKind = "tail_shape"
)

// MenuType selects how a menu's options are presented.
type MenuType string

const (
	TypeList   MenuType = "list"
	TypeIcon   MenuType = "icon"
	TypeColor  MenuType = "color"
	TypeSlider MenuType = "slider"
)

// OptionDef is one selectable appearance value in a sheet.
type OptionDef struct {
	Value byte
	Icon  uint32
	Names Names
}

// MenuDef is one customization menu in a sheet.
type MenuDef struct {
	Kind    MenuKind
	Type    MenuType
	Options []OptionDef
}

// CharaMakeSheet holds the standard menus for one (clan, sex) group.
type CharaMakeSheet struct {
	Clan  int
	Sex   int
	Menus []MenuDef
}

// CharaMakeTable holds all sheets indexed by (clan, sex).
type CharaMakeTable struct {
	sheets map[[2]int]*CharaMakeSheet
}

// Sheet returns the sheet for a group, or nil if not defined.
func (t *CharaMakeTable) Sheet(clan, sex int) *CharaMakeSheet {
	return t.sheets[[2]int{clan, sex}]
}

// Count returns total loaded sheets.
func (t *CharaMakeTable) Count() int {
	return len(t.sheets)
}

// --- YAML loading ---

type optionEntry struct {
	Value int               `yaml:"value"`
	Icon  uint32            `yaml:"icon"`
	Names map[string]string `yaml:"names"`
}

type menuEntry struct {
	Kind    string        `yaml:"kind"`
	Type    string        `yaml:"type"`
	Options []optionEntry `yaml:"options"`
}

type sheetEntry struct {
	Clan  int         `yaml:"clan"`
	Sex   int         `yaml:"sex"`
	Menus []menuEntry `yaml:"menus"`
}

type charaMakeFile struct {
	Sheets []sheetEntry `yaml:"sheets"`
}

// LoadCharaMakeTable loads customization sheets from YAML.
func LoadCharaMakeTable(path string) (*CharaMakeTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read charamake sheets: %w", err)
	}
	return ParseCharaMakeTable(raw)
}

// ParseCharaMakeTable builds a table from raw YAML.
func ParseCharaMakeTable(raw []byte) (*CharaMakeTable, error) {
	var f charaMakeFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse charamake sheets: %w", err)
	}
	t := &CharaMakeTable{sheets: make(map[[2]int]*CharaMakeSheet, len(f.Sheets))}
	for i := range f.Sheets {
		e := &f.Sheets[i]
		sheet := &CharaMakeSheet{
			Clan:  e.Clan,
			Sex:   e.Sex,
			Menus: make([]MenuDef, 0, len(e.Menus)),
		}
		for _, m := range e.Menus {
			def := MenuDef{
				Kind:    MenuKind(m.Kind),
				Type:    MenuType(m.Type),
				Options: make([]OptionDef, 0, len(m.Options)),
			}
			for _, o := range m.Options {
				if o.Value < 0 || o.Value > 255 {
					return nil, fmt.Errorf("sheet clan %d sex %d menu %s: option value %d out of byte range",
						e.Clan, e.Sex, m.Kind, o.Value)
				}
				def.Options = append(def.Options, OptionDef{
					Value: byte(o.Value),
					Icon:  o.Icon,
					Names: Names(o.Names),
				})
			}
			sheet.Menus = append(sheet.Menus, def)
		}
		key := [2]int{e.Clan, e.Sex}
		if _, dup := t.sheets[key]; dup {
			return nil, fmt.Errorf("duplicate sheet for clan %d sex %d", e.Clan, e.Sex)
		}
		t.sheets[key] = sheet
	}
	return t, nil
}
