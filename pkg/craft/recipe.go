package craft

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bereftsouls/recipemod/pkg/recipe"
	"github.com/google/uuid"
)

// Ingredient is a single ingredient entry of a recipe.
type Ingredient struct {
	Item  recipe.ItemRef
	Stack int
}

// Recipe is a crafting recipe owned by a Book.
type Recipe struct {
	id          uuid.UUID
	book        *Book
	result      recipe.ItemRef
	resultStack int
	ingredients []Ingredient
	decraft     []recipe.Condition
}

var _ recipe.Recipe = (*Recipe)(nil)

func (r *Recipe) ID() uuid.UUID {
	return r.id
}

func (r *Recipe) Result() recipe.ItemRef {
	return r.result
}

func (r *Recipe) ResultStack() int {
	return r.resultStack
}

// Ingredients returns a copy of the ingredient entries in insertion order.
func (r *Recipe) Ingredients() []Ingredient {
	return slices.Clone(r.ingredients)
}

// Stacks sums ingredient stacks per item type.
func (r *Recipe) Stacks() map[int]int {
	out := make(map[int]int, len(r.ingredients))
	for _, in := range r.ingredients {
		out[in.Item.Type()] += in.Stack
	}
	return out
}

func (r *Recipe) HasIngredient(item recipe.ItemRef) bool {
	return r.ingredientIndex(item) >= 0
}

func (r *Recipe) DecraftConditions() []recipe.Condition {
	return slices.Clone(r.decraft)
}

// Decraftable reports whether every decraft condition is met.
func (r *Recipe) Decraftable() bool {
	for _, c := range r.decraft {
		if !c.Met() {
			return false
		}
	}
	return true
}

func (r *Recipe) Registered() bool {
	return r.book != nil && r.book.index(r.id) >= 0
}

// AddIngredient appends an entry; adding the same item twice keeps both.
func (r *Recipe) AddIngredient(item recipe.ItemRef, stack int) {
	r.ingredients = append(r.ingredients, Ingredient{Item: item, Stack: stack})
}

// RemoveIngredient removes the first entry of the item's type, if any.
func (r *Recipe) RemoveIngredient(item recipe.ItemRef) {
	if i := r.ingredientIndex(item); i >= 0 {
		r.ingredients = slices.Delete(r.ingredients, i, i+1)
	}
}

func (r *Recipe) AddDecraftCondition(condition recipe.Condition) {
	r.decraft = append(r.decraft, condition)
}

func (r *Recipe) Clone() recipe.Recipe {
	return &Recipe{
		id:          uuid.New(),
		book:        r.book,
		result:      r.result,
		resultStack: r.resultStack,
		ingredients: slices.Clone(r.ingredients),
		decraft:     slices.Clone(r.decraft),
	}
}

func (r *Recipe) Register() {
	if r.book == nil {
		return
	}
	r.book.register(r)
}

// SortAfter moves r directly after other. Recipes from another book or
// not yet registered are left where they are.
func (r *Recipe) SortAfter(other recipe.Recipe) {
	o, ok := other.(*Recipe)
	if !ok || o == nil || r.book == nil || o.book != r.book {
		return
	}
	r.book.moveAfter(r, o)
}

func (r *Recipe) String() string {
	parts := make([]string, 0, len(r.ingredients))
	for _, in := range r.ingredients {
		parts = append(parts, fmt.Sprintf("%d x%d", in.Item.Type(), in.Stack))
	}
	return fmt.Sprintf("%d x%d <- [%s]", r.result.Type(), r.resultStack, strings.Join(parts, ", "))
}

func (r *Recipe) ingredientIndex(item recipe.ItemRef) int {
	return slices.IndexFunc(r.ingredients, func(in Ingredient) bool {
		return in.Item.Same(item)
	})
}
