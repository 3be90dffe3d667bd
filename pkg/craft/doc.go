// Package craft is an in-memory recipe book implementing recipe.Recipe.
//
// A Book holds the active recipes in display order. Recipes are created
// unregistered and become active on Register; Clone produces a fresh,
// unregistered copy with its own id, which is what recipe.Branch relies on.
//
// Patch applies a table of recipe mods keyed by result item to every
// registered recipe, the way a host runs mods after all recipes are added.
//
// A Book is not safe for concurrent use.
package craft
