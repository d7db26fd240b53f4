package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NPCAppearance is one NPC's baked appearance: its population group plus
// the customize values it was authored with. Values outside the standard
// sheets become NPC-exclusive options in the built sets.
type NPCAppearance struct {
	NpcID     int32
	Clan      int
	Sex       int
	Customize map[MenuKind]byte
}

// NPCAppearanceTable holds all NPC appearances indexed by NPC ID.
type NPCAppearanceTable struct {
	byID map[int32]*NPCAppearance
}

// Get returns an appearance by NPC ID, or nil if not found.
func (t *NPCAppearanceTable) Get(npcID int32) *NPCAppearance {
	return t.byID[npcID]
}

// Count returns total loaded appearances.
func (t *NPCAppearanceTable) Count() int {
	return len(t.byID)
}

// All returns every appearance (iteration order unspecified).
func (t *NPCAppearanceTable) All() []*NPCAppearance {
	result := make([]*NPCAppearance, 0, len(t.byID))
	for _, a := range t.byID {
		result = append(result, a)
	}
	return result
}

// Add merges extra appearances (from scripts) into the table.
// Later entries win on ID collision.
func (t *NPCAppearanceTable) Add(entries []NPCAppearance) {
	if t.byID == nil {
		t.byID = make(map[int32]*NPCAppearance, len(entries))
	}
	for i := range entries {
		e := entries[i]
		t.byID[e.NpcID] = &e
	}
}

// --- YAML loading ---

type npcAppearanceEntry struct {
	NpcID     int32          `yaml:"npc_id"`
	Clan      int            `yaml:"clan"`
	Sex       int            `yaml:"sex"`
	Customize map[string]int `yaml:"customize"`
}

type npcAppearanceFile struct {
	Npcs []npcAppearanceEntry `yaml:"npcs"`
}

// LoadNPCAppearanceTable loads NPC appearances from YAML.
func LoadNPCAppearanceTable(path string) (*NPCAppearanceTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read npc appearances: %w", err)
	}
	return ParseNPCAppearanceTable(raw)
}

// ParseNPCAppearanceTable builds a table from raw YAML.
func ParseNPCAppearanceTable(raw []byte) (*NPCAppearanceTable, error) {
	var f npcAppearanceFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse npc appearances: %w", err)
	}
	t := &NPCAppearanceTable{byID: make(map[int32]*NPCAppearance, len(f.Npcs))}
	for _, e := range f.Npcs {
		a := &NPCAppearance{
			NpcID:     e.NpcID,
			Clan:      e.Clan,
			Sex:       e.Sex,
			Customize: make(map[MenuKind]byte, len(e.Customize)),
		}
		for kind, value := range e.Customize {
			if value < 0 || value > 255 {
				return nil, fmt.Errorf("npc %d: customize %s value %d out of byte range", e.NpcID, kind, value)
			}
			a.Customize[MenuKind(kind)] = byte(value)
		}
		t.byID[a.NpcID] = a
	}
	return t, nil
}
