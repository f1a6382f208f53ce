package gear

// Catalog resolves equipment IDs to pieces
type Catalog interface {
	Resolve(equipmentID string) (*Piece, bool)
}

// StaticCatalog is an in-memory catalog snapshot keyed by piece ID
type StaticCatalog map[string]*Piece

// NewStaticCatalog indexes pieces by ID. Later duplicates win.
func NewStaticCatalog(pieces ...*Piece) StaticCatalog {
	c := make(StaticCatalog, len(pieces))
	for _, p := range pieces {
		if p != nil {
			c[p.ID] = p
		}
	}
	return c
}

// Resolve looks up a piece by ID
func (c StaticCatalog) Resolve(equipmentID string) (*Piece, bool) {
	p, ok := c[equipmentID]
	return p, ok
}
