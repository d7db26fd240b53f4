package world

import (
	"encoding/json"
	"fmt"
)

// MaterialsPerModel is the number of material texture slots each equipment
// model slot owns.
const MaterialsPerModel = 4

// ColorTableRows is the number of rows in a decoded material color table.
const ColorTableRows = 32

// DrawObjectKind selects which of an actor's draw objects a Key addresses.
type DrawObjectKind byte

const (
	KindInvalid  DrawObjectKind = 0
	KindHuman    DrawObjectKind = 1
	KindMainhand DrawObjectKind = 2
	KindOffhand  DrawObjectKind = 3
)

func (k DrawObjectKind) String() string {
	switch k {
	case KindHuman:
		return "Human"
	case KindMainhand:
		return "Mainhand"
	case KindOffhand:
		return "Offhand"
	}
	return "Invalid"
}

// Key addresses one row of one material color table on one equipment slot
// of one draw object. It packs into a uint32 so per-row overrides can be
// stored, compared and range-scanned as bare integers.
type Key struct {
	Kind     DrawObjectKind
	Slot     byte
	Material byte
	Row      byte
}

// InvalidKey is the canonical non-addressing key. It equals the zero value
// and the decode of the literal integer 0; it never validates.
var InvalidKey = Key{}

// Pack encodes the key as (kind<<24)|(slot<<16)|(material<<8)|row.
// Total for all field values, including structurally invalid ones.
func (k Key) Pack() uint32 {
	return uint32(k.Kind)<<24 | uint32(k.Slot)<<16 | uint32(k.Material)<<8 | uint32(k.Row)
}

// Unpack is the exact inverse of Pack. It never fails; use Valid to check
// the result.
func Unpack(v uint32) Key {
	return Key{
		Kind:     DrawObjectKind(v >> 24),
		Slot:     byte(v >> 16),
		Material: byte(v >> 8),
		Row:      byte(v),
	}
}

// Valid reports structural validity. It does not consult any live actor:
// a valid key may still miss at resolution time (empty slot, no table).
func (k Key) Valid() bool {
	switch k.Kind {
	case KindHuman, KindMainhand, KindOffhand:
	default:
		return false
	}
	return k.Slot < HumanSlotCount && k.Material < MaterialsPerModel && k.Row < ColorTableRows
}

// KeyFromUint32 decodes v and reports whether the result validates.
func KeyFromUint32(v uint32) (Key, bool) {
	k := Unpack(v)
	return k, k.Valid()
}

// KeyForSlot builds the base key (material 0, row 0) addressing an
// equipment slot. Slots outside the ten body slots and the two weapon
// slots yield InvalidKey.
func KeyForSlot(slot EquipSlot) Key {
	switch slot {
	case SlotMainHand:
		return Key{Kind: KindMainhand}
	case SlotOffHand:
		return Key{Kind: KindOffhand}
	}
	if ord, ok := HumanSlotOrdinal(slot); ok {
		return Key{Kind: KindHuman, Slot: ord}
	}
	return InvalidKey
}

// EquipSlot is the partial inverse of KeyForSlot. Only human slots 0-9 and
// weapon slot 0 have an inverse; everything else maps to SlotUnknown.
func (k Key) EquipSlot() EquipSlot {
	switch k.Kind {
	case KindHuman:
		return HumanSlotFromOrdinal(k.Slot)
	case KindMainhand:
		if k.Slot == 0 {
			return SlotMainHand
		}
	case KindOffhand:
		if k.Slot == 0 {
			return SlotOffHand
		}
	}
	return SlotUnknown
}

// MinKey builds the smallest key in packed order with the given leading
// fields. Trailing bytes (slot, material, row) default to 0x00.
func MinKey(kind DrawObjectKind, rest ...byte) Key {
	k := Key{Kind: kind}
	if len(rest) > 0 {
		k.Slot = rest[0]
	}
	if len(rest) > 1 {
		k.Material = rest[1]
	}
	if len(rest) > 2 {
		k.Row = rest[2]
	}
	return k
}

// MaxKey builds the largest key in packed order with the given leading
// fields. Trailing bytes (slot, material, row) default to 0xFF.
func MaxKey(kind DrawObjectKind, rest ...byte) Key {
	k := Key{Kind: kind, Slot: 0xFF, Material: 0xFF, Row: 0xFF}
	if len(rest) > 0 {
		k.Slot = rest[0]
	}
	if len(rest) > 1 {
		k.Material = rest[1]
	}
	if len(rest) > 2 {
		k.Row = rest[2]
	}
	return k
}

// String shows the resolved slot name when the key maps back to one, or
// the raw kind and slot when it does not. Material and row are 1-based
// for display.
func (k Key) String() string {
	if slot := k.EquipSlot(); slot != SlotUnknown {
		return fmt.Sprintf("%s Material #%d Row #%d", slot, k.Material+1, k.Row+1)
	}
	return fmt.Sprintf("%s Slot %d Material #%d Row #%d", k.Kind, k.Slot, k.Material+1, k.Row+1)
}

// MarshalJSON serializes the key as its packed integer, never as the four
// component fields.
func (k Key) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.Pack())
}

// UnmarshalJSON accepts a packed integer and rejects values that do not
// validate, reporting the offending integer.
func (k *Key) UnmarshalJSON(b []byte) error {
	var v uint32
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	dec, ok := KeyFromUint32(v)
	if !ok {
		return fmt.Errorf("invalid material key 0x%08X", v)
	}
	*k = dec
	return nil
}
