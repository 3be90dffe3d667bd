package recipe

// Recipe is the host object mods operate on.
type Recipe interface {
	AddIngredient(item ItemRef, stack int)
	// RemoveIngredient removes one matching ingredient. Absent items are left to the implementation.
	RemoveIngredient(item ItemRef)
	AddDecraftCondition(condition Condition)
	// Clone returns an independent, unregistered copy.
	Clone() Recipe
	// Register makes a cloned recipe part of the active set.
	Register()
	// SortAfter places the recipe directly after other.
	SortAfter(other Recipe)
}

// Item is a handle to an item type known to the host.
type Item interface {
	Type() int
}

// ItemRef references an item type either by numeric id or by handle.
type ItemRef struct {
	id   int
	item Item
}

// ID references an item by its numeric type.
func ID(id int) ItemRef {
	return ItemRef{id: id}
}

// Handle references an item through its handle.
func Handle(item Item) ItemRef {
	return ItemRef{item: item}
}

// Typed references the item type T. T should be a value type whose zero
// value reports its item type.
func Typed[T Item]() ItemRef {
	var zero T
	return Handle(zero)
}

// Type resolves the referenced item type.
func (r ItemRef) Type() int {
	if r.item != nil {
		return r.item.Type()
	}
	return r.id
}

// Item returns the handle, if the reference was built from one.
func (r ItemRef) Item() (Item, bool) {
	return r.item, r.item != nil
}

// Same reports whether both references resolve to the same item type.
func (r ItemRef) Same(other ItemRef) bool {
	return r.Type() == other.Type()
}

// Condition gates decrafting of a recipe.
type Condition struct {
	Description string
	Predicate   func() bool
}

// Met evaluates the predicate; a condition without one is always met.
func (c Condition) Met() bool {
	if c.Predicate == nil {
		return true
	}
	return c.Predicate()
}
