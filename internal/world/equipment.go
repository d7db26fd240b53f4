package world

// EquipSlot identifies an equipment slot on a character.
type EquipSlot int

const (
	SlotUnknown  EquipSlot = 0
	SlotHead     EquipSlot = 1
	SlotBody     EquipSlot = 2
	SlotHands    EquipSlot = 3
	SlotLegs     EquipSlot = 4
	SlotFeet     EquipSlot = 5
	SlotEars     EquipSlot = 6
	SlotNeck     EquipSlot = 7
	SlotWrists   EquipSlot = 8
	SlotRFinger  EquipSlot = 9
	SlotLFinger  EquipSlot = 10
	SlotMainHand EquipSlot = 11
	SlotOffHand  EquipSlot = 12
	SlotMax      EquipSlot = 13
)

// HumanSlotCount is the number of equipment model slots a human draw object
// exposes. Only the first ten body slots map onto them.
const HumanSlotCount = 10

func (s EquipSlot) String() string {
	switch s {
	case SlotHead:
		return "Head"
	case SlotBody:
		return "Body"
	case SlotHands:
		return "Hands"
	case SlotLegs:
		return "Legs"
	case SlotFeet:
		return "Feet"
	case SlotEars:
		return "Ears"
	case SlotNeck:
		return "Neck"
	case SlotWrists:
		return "Wrists"
	case SlotRFinger:
		return "Right Finger"
	case SlotLFinger:
		return "Left Finger"
	case SlotMainHand:
		return "Mainhand"
	case SlotOffHand:
		return "Offhand"
	}
	return "Unknown"
}

// IsWeaponSlot returns true for the two weapon slots.
func IsWeaponSlot(slot EquipSlot) bool {
	return slot == SlotMainHand || slot == SlotOffHand
}

// HumanSlotOrdinal maps a body slot to its model-slot ordinal (0-9).
// Weapon slots and SlotUnknown have no ordinal.
func HumanSlotOrdinal(slot EquipSlot) (byte, bool) {
	if slot >= SlotHead && slot <= SlotLFinger {
		return byte(slot - SlotHead), true
	}
	return 0, false
}

// HumanSlotFromOrdinal is the inverse of HumanSlotOrdinal.
// Ordinals >= HumanSlotCount map to SlotUnknown.
func HumanSlotFromOrdinal(ord byte) EquipSlot {
	if ord < HumanSlotCount {
		return SlotHead + EquipSlot(ord)
	}
	return SlotUnknown
}
