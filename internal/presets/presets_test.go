package presets_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognivore/cube-with-archive/internal/draft"
	"github.com/cognivore/cube-with-archive/internal/presets"
)

func TestBuiltin_Garbagemasters(t *testing.T) {
	reg, err := presets.Builtin()
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "garbagemasters"}, reg.Names())

	name, raw, ok := reg.Lookup("garbagemasters")
	require.True(t, ok)
	assert.Equal(t, "garbagemasters", name)

	layouts, err := draft.Expand(raw)
	require.NoError(t, err)
	require.Equal(t, []string{"Rare", "Mythic"}, layouts.Names())

	rare, _ := layouts.Get("Rare")
	assert.Equal(t, 7, rare.Weight)
	assert.Equal(t, []draft.SlotValue{
		{Rarity: draft.Rare, Count: 1},
		{Rarity: draft.Common, Count: 11},
		{Rarity: draft.Uncommon, Count: 4},
		{Rarity: draft.Special, Count: 2},
	}, rare.Slots)
}

func TestBuiltin_UnknownCubeFallsBackToDefault(t *testing.T) {
	reg, err := presets.Builtin()
	require.NoError(t, err)

	name, raw, ok := reg.Lookup("5f2b1c")
	require.True(t, ok)
	assert.Equal(t, presets.DefaultName, name)

	layouts, err := draft.Expand(raw)
	require.NoError(t, err)
	mythic, ok := layouts.Get("Mythic")
	require.True(t, ok)
	assert.Equal(t, []draft.SlotValue{
		{Rarity: draft.Mythic, Count: 1},
		{Rarity: draft.Common, Count: 11},
		{Rarity: draft.Uncommon, Count: 3},
	}, mythic.Slots)
}

func TestLoad_UserFileOverridesAndAdds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	in := "" +
		"presets:\n" +
		"  default:\n" +
		"    - values: [{rarity: Common, count: 1}]\n" +
		"      instances: 14\n" +
		"    - values: [{rarity: rare, count: 1}, {rarity: special, count: 1}]\n" +
		"      instances: 1\n" +
		"  jumpstart:\n" +
		"    - values: [{rarity: common, count: 1}]\n" +
		"      instances: 20\n"
	require.NoError(t, os.WriteFile(path, []byte(in), 0o644))

	reg, err := presets.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "garbagemasters", "jumpstart"}, reg.Names())

	_, raw, _ := reg.Lookup("anything")
	require.Len(t, raw, 2)
	assert.Equal(t, 14, raw[0].Instances)
	assert.Equal(t, draft.Common, raw[0].Values[0].Rarity)
	assert.True(t, raw[1].IsVariable())
}

func TestLoad_MissingFileUsesBuiltin(t *testing.T) {
	reg, err := presets.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "garbagemasters"}, reg.Names())
}

func TestLoad_RejectsBadFiles(t *testing.T) {
	tests := map[string]string{
		"unknown key":   "presets:\n  x:\n    - values: [{rarity: rare, count: 1}]\n      instances: 1\n      foil: true\n",
		"bad rarity":    "presets:\n  x:\n    - values: [{rarity: bonus, count: 1}]\n      instances: 1\n",
		"zero instance": "presets:\n  x:\n    - values: [{rarity: rare, count: 1}]\n      instances: 0\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "presets.yaml")
			require.NoError(t, os.WriteFile(path, []byte(in), 0o644))

			_, err := presets.Load(path)
			assert.Error(t, err)
		})
	}
}
