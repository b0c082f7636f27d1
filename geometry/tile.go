package geometry

// Tile is the material record a surface is spawned from: a mesh key and a
// material key owned by whatever renders them. It is copied by value.
type Tile struct {
	Mesh     string `json:"mesh"`
	Material string `json:"material"`
}

// IsZero reports whether no mesh or material has been set
func (t Tile) IsZero() bool {
	return t == Tile{}
}
