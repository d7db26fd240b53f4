package world

// Texture is an opaque handle to a material texture resource. A nil entry
// in a draw object's texture list means the slot is empty.
type Texture any

// DrawObject is the narrow view of a renderable model the resolver needs.
type DrawObject interface {
	// CharacterBase reports whether the object carries the
	// material/texture substructure the pipeline walks.
	CharacterBase() bool
	// SlotCount is the number of equipment model slots the object owns.
	SlotCount() int
	// Textures is the flattened texture list, MaterialsPerModel entries
	// per slot, possibly with nil entries.
	Textures() []Texture
}

// Actor is the narrow view of a live entity the resolver needs.
type Actor interface {
	// Valid reports whether the handle refers to a live, model-bearing
	// entity.
	Valid() bool
	// Character reports whether the entity is a character kind that may
	// carry weapon draw objects.
	Character() bool
	// Model returns the primary (body) draw object, or nil.
	Model() DrawObject
	// Weapon returns the mainhand (0) or offhand (1) draw object, or nil.
	Weapon(index int) DrawObject
}

// Resolver walks from a live actor down to a single color-table row.
//
// Every stage is a synchronous read over caller-supplied state and reports
// a miss through its bool result. Misses are normal here — empty equipment
// slots and materials without color tables are everyday state, so no stage
// returns an error. Nothing is mutated and nothing blocks.
type Resolver struct {
	Codec ColorTableCodec
}

// DrawObject selects the actor's draw object for the key's kind.
// Weapon kinds require a character-kind actor. The result must itself be
// a character base; this is re-checked even for the human case.
func (r *Resolver) DrawObject(k Key, a Actor) (DrawObject, bool) {
	if a == nil || !a.Valid() {
		return nil, false
	}
	var d DrawObject
	switch k.Kind {
	case KindHuman:
		d = a.Model()
	case KindMainhand:
		if !a.Character() {
			return nil, false
		}
		d = a.Weapon(0)
	case KindOffhand:
		if !a.Character() {
			return nil, false
		}
		d = a.Weapon(1)
	default:
		return nil, false
	}
	if d == nil || !d.CharacterBase() {
		return nil, false
	}
	return d, true
}

// TextureBank returns the contiguous MaterialsPerModel texture slots
// belonging to the key's model slot.
func (r *Resolver) TextureBank(k Key, d DrawObject) ([]Texture, bool) {
	if d == nil || int(k.Slot) >= d.SlotCount() {
		return nil, false
	}
	texes := d.Textures()
	end := (int(k.Slot) + 1) * MaterialsPerModel
	if len(texes) < end {
		return nil, false
	}
	return texes[end-MaterialsPerModel : end], true
}

// Texture picks the key's material texture out of a slot's bank.
// An empty (nil) slot is a miss.
func (r *Resolver) Texture(k Key, bank []Texture) (Texture, bool) {
	if int(k.Material) >= len(bank) {
		return nil, false
	}
	tex := bank[k.Material]
	if tex == nil {
		return nil, false
	}
	return tex, true
}

// Table decodes the color table behind a texture via the codec.
func (r *Resolver) Table(tex Texture) (*ColorTable, bool) {
	if tex == nil {
		return nil, false
	}
	return r.Codec.DecodeColorTable(tex)
}

// Row resolves the key end to end against a live actor and returns the
// addressed color row by value. Any stage miss fails the whole resolution.
func (r *Resolver) Row(k Key, a Actor) (ColorRow, bool) {
	if !k.Valid() {
		return ColorRow{}, false
	}
	d, ok := r.DrawObject(k, a)
	if !ok {
		return ColorRow{}, false
	}
	bank, ok := r.TextureBank(k, d)
	if !ok {
		return ColorRow{}, false
	}
	tex, ok := r.Texture(k, bank)
	if !ok {
		return ColorRow{}, false
	}
	table, ok := r.Table(tex)
	if !ok {
		return ColorRow{}, false
	}
	return table.Rows[k.Row], true
}
