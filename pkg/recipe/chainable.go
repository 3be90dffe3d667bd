package recipe

// Chainable is a Mod that can still be extended with further steps.
//
// The distinction from Mod exists to avoid ambiguity after Branch: in
// Branch(a, b).AddItem(x) it is unclear which of the two recipes receives
// x, so Branch returns a plain Mod and the chain ends there.
type Chainable struct {
	mod Mod
}

func newChainable(fn func(Recipe)) Chainable {
	return Chainable{mod: Mod{mod: fn}}
}

// Modify applies every chained step to r in order.
func (c Chainable) Modify(r Recipe) {
	c.mod.Modify(r)
}

// Mod narrows the chain to a plain Mod.
func (c Chainable) Mod() Mod {
	return c.mod
}

func (c Chainable) AddItem(item ItemRef, stack ...int) Chainable {
	return chain(c, AddItem(item, stack...))
}

func (c Chainable) RemoveItem(item ItemRef) Chainable {
	return chain(c, RemoveItem(item))
}

func (c Chainable) ReplaceItem(orig, replacement ItemRef) Chainable {
	return chain(c, ReplaceItem(orig, replacement))
}

func (c Chainable) AddDecraftCondition(condition Condition) Chainable {
	return chain(c, AddDecraftCondition(condition))
}

// Branch applies the chain so far and then branches. The result cannot be
// chained further.
func (c Chainable) Branch(option1, option2 Modifier) Mod {
	return chainEnd(c, Branch(option1, option2))
}

func chain(first, second Chainable) Chainable {
	return newChainable(func(r Recipe) {
		first.Modify(r)
		second.Modify(r)
	})
}

// unchainable variant
func chainEnd(first Chainable, second Mod) Mod {
	return Mod{mod: func(r Recipe) {
		first.Modify(r)
		second.Modify(r)
	}}
}
