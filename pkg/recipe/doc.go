// Package recipe provides deferred, composable modifications of crafting
// recipes.
//
// A Mod wraps a single action over a Recipe. Nothing happens until Modify
// is called, so mods can be declared up front (for example in a table keyed
// by result item) and applied once the host has finished adding recipes.
//
// Factories return a Chainable, which allows sequential composition:
//
//	recipe.AddItem(recipe.ID(wood), 2).
//		RemoveItem(recipe.ID(gel)).
//		AddDecraftCondition(downedBoss)
//
// Branch clones the target and applies a different modifier to each copy.
// It returns a plain Mod, which has no chaining methods: after a branch
// there are two recipes, and a further AddItem would not say which one it
// means. Use Sequence or put the extra steps inside the branch options.
//
// Key operations:
// - AddItem/RemoveItem/ReplaceItem/AddDecraftCondition: primitive steps
// - Branch: fork a recipe into the original and a registered clone
// - Sequence: apply several modifiers to the same recipe in order
// - ID/Handle/Typed: the accepted item reference forms
package recipe
