package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestClassify_KnownCategories(t *testing.T) {
	for _, c := range []Category{CategoryNone, CategoryTerrain, CategoryUnit, CategoryBullet} {
		assert.Equal(t, c, Classify(CategoryTag(c)), c.String())
	}
}

func TestClassify_OutOfRangeIsNone(t *testing.T) {
	assert.Equal(t, CategoryNone, Classify(0))
	assert.Equal(t, CategoryNone, Classify(TagBase-1))
	assert.Equal(t, CategoryNone, Classify(TagBase+Tag(categoryCount)))
	assert.Equal(t, CategoryNone, Classify(^Tag(0)))
}

func TestCategoryTag_Injective(t *testing.T) {
	seen := make(map[Tag]Category)
	for c := CategoryNone; c < categoryCount; c++ {
		tag := CategoryTag(c)
		_, dup := seen[tag]
		assert.False(t, dup, "tag %d reused", tag)
		seen[tag] = c
	}
}

func TestClassify_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tag := Tag(rapid.Uint64().Draw(t, "tag"))
		c := Classify(tag)
		if c == CategoryNone {
			return
		}
		if CategoryTag(c) != tag {
			t.Fatalf("tag %d classified %s but %s maps to %d", tag, c, c, CategoryTag(c))
		}
	})
}
