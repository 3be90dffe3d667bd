package modref

import "context"

// Internal names of the optional mods this mod integrates with.
const (
	CalamityMod             = "CalamityMod"
	ThoriumMod              = "ThoriumMod"
	BossChecklist           = "BossChecklist"
	FargowiltasSouls        = "FargowiltasSouls"
	Fargowiltas             = "Fargowiltas"
	SpiritMod               = "SpiritMod"
	Gensokyo                = "Gensokyo"
	SOTS                    = "SOTS"
	CalamityRangerExpansion = "CalamityAmmo"
)

// References holds the optional mods found at load time. A nil field means
// the mod is not loaded.
type References struct {
	Calamity                Handle
	BossChecklist           Handle
	Thorium                 Handle
	Spirit                  Handle
	FargosSouls             Handle
	Fargowiltas             Handle
	Gensokyo                Handle
	SOTS                    Handle
	CalamityRangerExpansion Handle
}

// Known lists the resolved mods in load order.
var Known = []string{
	CalamityMod,
	ThoriumMod,
	BossChecklist,
	FargowiltasSouls,
	Fargowiltas,
	SpiritMod,
	Gensokyo,
	SOTS,
	CalamityRangerExpansion,
}

var fields = map[string]func(*References) *Handle{
	CalamityMod:             func(r *References) *Handle { return &r.Calamity },
	ThoriumMod:              func(r *References) *Handle { return &r.Thorium },
	BossChecklist:           func(r *References) *Handle { return &r.BossChecklist },
	FargowiltasSouls:        func(r *References) *Handle { return &r.FargosSouls },
	Fargowiltas:             func(r *References) *Handle { return &r.Fargowiltas },
	SpiritMod:               func(r *References) *Handle { return &r.Spirit },
	Gensokyo:                func(r *References) *Handle { return &r.Gensokyo },
	SOTS:                    func(r *References) *Handle { return &r.SOTS },
	CalamityRangerExpansion: func(r *References) *Handle { return &r.CalamityRangerExpansion },
}

// Load resolves every Known mod through lookup.
func Load(ctx context.Context, lookup Lookup) References {
	logger := GetLogger(ctx)

	var refs References
	for _, name := range Known {
		h, ok := lookup.TryGetMod(name)
		if !ok || h == nil {
			logger.DebugContext(ctx, "optional mod not loaded", "mod", name)
			continue
		}
		*fields[name](&refs) = h
		logger.InfoContext(ctx, "optional mod loaded", "mod", name)
	}
	return refs
}

// Has reports whether the mod with the given internal name was loaded.
func (r References) Has(name string) bool {
	get, ok := fields[name]
	if !ok {
		return false
	}
	return *get(&r) != nil
}

// Loaded returns the internal names of the loaded mods in load order.
func (r References) Loaded() []string {
	var out []string
	for _, name := range Known {
		if r.Has(name) {
			out = append(out, name)
		}
	}
	return out
}
