package data

import (
	"testing"

	"golang.org/x/text/language"
)

const sampleSheets = `
sheets:
  - clan: 1
    sex: 0
    menus:
      - kind: hair_style
        type: icon
        options:
          - value: 1
            icon: 2251
            names: {en: "Short", ja: "ショート"}
          - value: 2
            icon: 2252
            names: {en: "Long"}
      - kind: eye_color
        type: color
        options:
          - value: 10
          - value: 11
`

func TestParseCharaMakeTable(t *testing.T) {
	table, err := ParseCharaMakeTable([]byte(sampleSheets))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if table.Count() != 1 {
		t.Fatalf("expected 1 sheet, got %d", table.Count())
	}
	sheet := table.Sheet(1, 0)
	if sheet == nil {
		t.Fatal("expected sheet for clan 1 sex 0")
	}
	if len(sheet.Menus) != 2 {
		t.Fatalf("expected 2 menus, got %d", len(sheet.Menus))
	}
	hair := sheet.Menus[0]
	if hair.Kind != MenuHairStyle || hair.Type != TypeIcon {
		t.Fatalf("unexpected menu header: %+v", hair)
	}
	if len(hair.Options) != 2 || hair.Options[0].Value != 1 || hair.Options[0].Icon != 2251 {
		t.Fatalf("unexpected options: %+v", hair.Options)
	}
	if table.Sheet(2, 0) != nil {
		t.Fatal("undefined group must return nil")
	}
}

func TestParseCharaMakeTableRejectsDuplicates(t *testing.T) {
	dup := sampleSheets + `
  - clan: 1
    sex: 0
    menus: []
`
	if _, err := ParseCharaMakeTable([]byte(dup)); err == nil {
		t.Fatal("expected duplicate sheet error")
	}
}

func TestParseCharaMakeTableRejectsWideValues(t *testing.T) {
	bad := `
sheets:
  - clan: 1
    sex: 0
    menus:
      - kind: face
        type: list
        options:
          - value: 300
`
	if _, err := ParseCharaMakeTable([]byte(bad)); err == nil {
		t.Fatal("expected out-of-byte-range error")
	}
}

func TestNamesLanguageMatching(t *testing.T) {
	n := Names{"en": "Short", "ja": "ショート"}
	if got := n.For(language.Japanese); got != "ショート" {
		t.Fatalf("ja: got %q", got)
	}
	if got := n.For(language.AmericanEnglish); got != "Short" {
		t.Fatalf("en-US: got %q", got)
	}
	// No match falls back to the matcher's best candidate, never "".
	if got := n.For(language.German); got == "" {
		t.Fatal("unmatched language must still yield a name")
	}
	if got := Names(nil).For(language.English); got != "" {
		t.Fatalf("empty names: got %q", got)
	}
}

func TestParseNPCAppearanceTable(t *testing.T) {
	raw := `
npcs:
  - npc_id: 1001
    clan: 1
    sex: 1
    customize:
      hair_style: 200
      eye_color: 10
`
	table, err := ParseNPCAppearanceTable([]byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if table.Count() != 1 {
		t.Fatalf("expected 1 npc, got %d", table.Count())
	}
	a := table.Get(1001)
	if a == nil || a.Clan != 1 || a.Sex != 1 {
		t.Fatalf("unexpected appearance: %+v", a)
	}
	if a.Customize[MenuHairStyle] != 200 {
		t.Fatalf("expected hair_style 200, got %d", a.Customize[MenuHairStyle])
	}

	table.Add([]NPCAppearance{{NpcID: 2002, Clan: 2, Sex: 0}})
	if table.Count() != 2 || table.Get(2002) == nil {
		t.Fatal("Add must merge script entries")
	}
}
