package world

// ColorRow holds the shader parameters of one color-table row.
// Plain value type; rows are copied out of tables, never referenced.
type ColorRow struct {
	DiffuseR float32 `json:"dr"`
	DiffuseG float32 `json:"dg"`
	DiffuseB float32 `json:"db"`

	SpecularR float32 `json:"sr"`
	SpecularG float32 `json:"sg"`
	SpecularB float32 `json:"sb"`

	EmissiveR float32 `json:"er"`
	EmissiveG float32 `json:"eg"`
	EmissiveB float32 `json:"eb"`

	SpecularStrength float32 `json:"ss"`
	GlossStrength    float32 `json:"gs"`

	TileIndex uint16  `json:"tile"`
	RepeatX   float32 `json:"rx"`
	RepeatY   float32 `json:"ry"`
	Skew      float32 `json:"skew"`
}

// ColorTable is a decoded material color table.
type ColorTable struct {
	Rows [ColorTableRows]ColorRow
}

// ColorTableCodec decodes a texture resource into a color table.
// The binary texture layout is the codec's concern; the resolver only
// sequences the call. A false return means the texture holds no table.
type ColorTableCodec interface {
	DecodeColorTable(tex Texture) (*ColorTable, bool)
}
