package physics

// Category is the semantic meaning of a collider, attached as its tag at creation
type Category uint8

const (
	CategoryNone Category = iota
	CategoryTerrain
	CategoryUnit
	CategoryBullet
	categoryCount
)

// Tag is the opaque numeric user data carried by a collider
type Tag uint64

// TagBase starts the reserved tag range; tags [TagBase, TagBase+categoryCount) map one to one onto categories
// Zero and anything outside the range classify as CategoryNone
const TagBase Tag = 0x1F0000

// CategoryTag returns the reserved tag for a category
func CategoryTag(c Category) Tag {
	if c >= categoryCount {
		return TagBase + Tag(CategoryNone)
	}
	return TagBase + Tag(c)
}

// Classify maps a collider tag back to its category
func Classify(t Tag) Category {
	if t < TagBase || t >= TagBase+Tag(categoryCount) {
		return CategoryNone
	}
	return Category(t - TagBase)
}

func (c Category) String() string {
	switch c {
	case CategoryTerrain:
		return "terrain"
	case CategoryUnit:
		return "unit"
	case CategoryBullet:
		return "bullet"
	default:
		return "none"
	}
}
