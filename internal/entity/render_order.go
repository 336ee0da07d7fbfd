package entity

// RenderOrder decides draw and query order when entities share a cell.
// Higher values sit on top.
type RenderOrder int

const (
	RenderCorpse RenderOrder = iota
	RenderStairs
	RenderItem
	RenderCreature
)

// String returns the render layer name.
func (o RenderOrder) String() string {
	switch o {
	case RenderCorpse:
		return "corpse"
	case RenderStairs:
		return "stairs"
	case RenderItem:
		return "item"
	case RenderCreature:
		return "creature"
	default:
		return "unknown"
	}
}
