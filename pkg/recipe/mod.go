package recipe

// Modifier is anything that can be applied to a Recipe. Both Mod and
// Chainable satisfy it, so a chainable result can be passed wherever a
// plain modifier is expected.
type Modifier interface {
	Modify(r Recipe)
}

// Mod is a deferred modification of a single recipe.
// The zero Mod does nothing.
type Mod struct {
	mod func(Recipe)
}

// Modify applies the mod to r. Applying the same mod twice is not
// guaranteed to be harmless; most steps are not idempotent.
func (m Mod) Modify(r Recipe) {
	if m.mod != nil {
		m.mod(r)
	}
}

// AddItem adds stack of item to the recipe. stack defaults to 1.
func AddItem(item ItemRef, stack ...int) Chainable {
	n := 1
	if len(stack) > 0 {
		n = stack[0]
	}
	return newChainable(func(r Recipe) {
		r.AddIngredient(item, n)
	})
}

// RemoveItem removes item from the recipe.
func RemoveItem(item ItemRef) Chainable {
	return newChainable(func(r Recipe) {
		r.RemoveIngredient(item)
	})
}

// ReplaceItem removes orig and then adds one of replacement.
func ReplaceItem(orig, replacement ItemRef) Chainable {
	return RemoveItem(orig).AddItem(replacement)
}

// AddDecraftCondition adds a condition that must hold for the recipe to be decrafted.
func AddDecraftCondition(condition Condition) Chainable {
	return newChainable(func(r Recipe) {
		r.AddDecraftCondition(condition)
	})
}

// Branch clones the recipe and modifies each resulting recipe using a
// different option. The clone is registered and sorted after the original
// before either option runs; option1 then applies to the original and
// option2 to the clone.
func Branch(option1, option2 Modifier) Mod {
	return Mod{mod: func(r Recipe) {
		clone := r.Clone()
		clone.Register()
		clone.SortAfter(r)
		apply(option1, r)
		apply(option2, clone)
	}}
}

// Sequence applies mods to the same recipe in order.
func Sequence(mods ...Modifier) Mod {
	return Mod{mod: func(r Recipe) {
		for _, m := range mods {
			apply(m, r)
		}
	}}
}

func apply(m Modifier, r Recipe) {
	if !IsNil(m) {
		m.Modify(r)
	}
}
