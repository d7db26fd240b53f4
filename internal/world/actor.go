package world

// ActorKind distinguishes entity categories for draw-object dispatch.
type ActorKind int

const (
	ActorNone ActorKind = iota
	ActorPlayer
	ActorBattleNPC
	ActorEventNPC
	ActorRetainer
)

// GameActor is an in-memory entity carrying draw objects.
// Accessed only under the caller's locking discipline — the resolver never
// mutates it.
type GameActor struct {
	ObjectID int32
	Kind     ActorKind
	Name     string

	Body    *Model
	Weapons [2]*Model // mainhand, offhand
}

// Model is a loaded draw object: a character body or a weapon.
type Model struct {
	// Base marks models carrying the material/texture substructure.
	Base bool
	// Slots is the number of equipment model slots (10 for a human body,
	// 1 for a weapon).
	Slots int
	// Texes is the flattened texture list, MaterialsPerModel entries per
	// slot. Nil entries are empty material slots.
	Texes []Texture
}

func (m *Model) CharacterBase() bool { return m.Base }
func (m *Model) SlotCount() int      { return m.Slots }
func (m *Model) Textures() []Texture { return m.Texes }

// NewHumanModel allocates a character-base body model with the full
// complement of empty texture slots.
func NewHumanModel() *Model {
	return &Model{
		Base:  true,
		Slots: HumanSlotCount,
		Texes: make([]Texture, HumanSlotCount*MaterialsPerModel),
	}
}

// NewWeaponModel allocates a single-slot weapon model.
func NewWeaponModel() *Model {
	return &Model{
		Base:  true,
		Slots: 1,
		Texes: make([]Texture, MaterialsPerModel),
	}
}

func (a *GameActor) Valid() bool {
	return a != nil && a.Kind != ActorNone && a.Body != nil
}

func (a *GameActor) Character() bool {
	return a.Kind == ActorPlayer || a.Kind == ActorBattleNPC
}

func (a *GameActor) Model() DrawObject {
	if a.Body == nil {
		return nil
	}
	return a.Body
}

func (a *GameActor) Weapon(index int) DrawObject {
	if index < 0 || index >= len(a.Weapons) || a.Weapons[index] == nil {
		return nil
	}
	return a.Weapons[index]
}

// SetTexture installs a texture into a model's material slot. Out-of-range
// positions are ignored.
func (m *Model) SetTexture(slot, material int, tex Texture) {
	pos := slot*MaterialsPerModel + material
	if slot < 0 || slot >= m.Slots || material < 0 || material >= MaterialsPerModel {
		return
	}
	if pos < len(m.Texes) {
		m.Texes[pos] = tex
	}
}
