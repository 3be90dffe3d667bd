// Package modref resolves references to optional sibling mods at load time.
//
// Load takes a Lookup (usually the host mod loader) and fills a References
// value with every mod from the Known table that is present. Missing mods
// leave their field nil; callers check before using cross-mod content.
// References is passed explicitly instead of being kept in package state.
package modref
