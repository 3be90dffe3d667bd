package modref

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ResolvesPresentMods(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.Register(mod(CalamityMod)))
	require.NoError(t, r.Register(mod(CalamityRangerExpansion)))
	require.NoError(t, r.Register(mod(BossChecklist)))
	require.NoError(t, r.Register(mod("SomethingElse")))

	refs := Load(context.Background(), r)

	require.NotNil(t, refs.Calamity)
	assert.Equal(t, CalamityMod, refs.Calamity.Name())
	require.NotNil(t, refs.CalamityRangerExpansion)
	assert.Equal(t, "CalamityAmmo", refs.CalamityRangerExpansion.Name())
	assert.NotNil(t, refs.BossChecklist)
	assert.Nil(t, refs.Thorium)
	assert.Nil(t, refs.Spirit)

	assert.True(t, refs.Has(CalamityMod))
	assert.False(t, refs.Has(ThoriumMod))
	assert.False(t, refs.Has("SomethingElse"))
	assert.Equal(t, []string{CalamityMod, BossChecklist, CalamityRangerExpansion}, refs.Loaded())
}

func TestLoad_EveryKnownModHasAField(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	for _, name := range Known {
		require.NoError(t, r.Register(mod(name)))
	}

	refs := Load(context.Background(), r)

	assert.Equal(t, Known, refs.Loaded())
	assert.Equal(t, References{
		Calamity:                mod(CalamityMod),
		BossChecklist:           mod(BossChecklist),
		Thorium:                 mod(ThoriumMod),
		Spirit:                  mod(SpiritMod),
		FargosSouls:             mod(FargowiltasSouls),
		Fargowiltas:             mod(Fargowiltas),
		Gensokyo:                mod(Gensokyo),
		SOTS:                    mod(SOTS),
		CalamityRangerExpansion: mod(CalamityRangerExpansion),
	}, refs)
}

func TestLoad_NothingPresent(t *testing.T) {
	t.Parallel()

	refs := Load(context.Background(), LookupFunc(func(string) (Handle, bool) { return nil, false }))

	assert.Equal(t, References{}, refs)
	assert.Empty(t, refs.Loaded())
}

func TestLoad_LogsThroughContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := WithLogger(context.Background(), logger)

	r := NewRegistry()
	require.NoError(t, r.Register(mod(SOTS)))
	Load(ctx, r)

	out := buf.String()
	assert.Contains(t, out, "optional mod loaded")
	assert.Contains(t, out, "mod=SOTS")
	assert.Equal(t, len(Known)-1, strings.Count(out, "optional mod not loaded"))
}

func TestGetLogger_Default(t *testing.T) {
	t.Parallel()

	assert.Same(t, slog.Default(), GetLogger(context.Background()))
	assert.Same(t, slog.Default(), GetLogger(WithLogger(context.Background(), nil)))
}
