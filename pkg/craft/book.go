package craft

import (
	"slices"

	"github.com/bereftsouls/recipemod/pkg/recipe"
	"github.com/google/uuid"
)

// Patches maps a result item type to the mod applied to recipes producing it.
type Patches map[int]recipe.Modifier

// Book is the ordered set of active recipes.
type Book struct {
	recipes []*Recipe
}

func NewBook() *Book {
	return &Book{}
}

// Create returns a new unregistered recipe producing stack of result.
func (b *Book) Create(result recipe.ItemRef, stack int) *Recipe {
	return &Recipe{
		id:          uuid.New(),
		book:        b,
		result:      result,
		resultStack: stack,
	}
}

// Recipes returns the registered recipes in order.
func (b *Book) Recipes() []*Recipe {
	return slices.Clone(b.recipes)
}

func (b *Book) Len() int {
	return len(b.recipes)
}

// Find returns the registered recipe with the given id.
func (b *Book) Find(id uuid.UUID) (*Recipe, bool) {
	i := b.index(id)
	if i < 0 {
		return nil, false
	}
	return b.recipes[i], true
}

// Patch applies each patch to every registered recipe producing its key
// and returns the number of recipes modified. Recipes registered while
// patching, such as branch clones, are not visited.
func (b *Book) Patch(patches Patches) int {
	if len(patches) == 0 {
		return 0
	}

	patched := 0
	for _, r := range b.Recipes() {
		m, ok := patches[r.result.Type()]
		if !ok || recipe.IsNil(m) {
			continue
		}
		m.Modify(r)
		patched++
	}
	return patched
}

func (b *Book) index(id uuid.UUID) int {
	return slices.IndexFunc(b.recipes, func(r *Recipe) bool {
		return r.id == id
	})
}

func (b *Book) register(r *Recipe) {
	if b.index(r.id) >= 0 {
		return
	}
	b.recipes = append(b.recipes, r)
}

// moveAfter places r directly after anchor. Both must be registered.
func (b *Book) moveAfter(r, anchor *Recipe) {
	from := b.index(r.id)
	if from < 0 || b.index(anchor.id) < 0 || r == anchor {
		return
	}
	b.recipes = slices.Delete(b.recipes, from, from+1)
	to := b.index(anchor.id)
	b.recipes = slices.Insert(b.recipes, to+1, r)
}
