package draftmancer_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognivore/cube-with-archive/internal/draft"
	"github.com/cognivore/cube-with-archive/internal/draftmancer"
)

func defaultLayouts(t *testing.T) draft.Layouts {
	t.Helper()
	layouts, err := draft.Expand(draft.RawLayout{
		{Slot: draft.Slot{Values: []draft.SlotValue{{Rarity: draft.Common, Count: 1}}}, Instances: 11},
		{Slot: draft.Slot{Values: []draft.SlotValue{{Rarity: draft.Uncommon, Count: 1}}}, Instances: 3},
		{Slot: draft.Slot{Values: []draft.SlotValue{{Rarity: draft.Rare, Count: 7}, {Rarity: draft.Mythic, Count: 1}}}, Instances: 1},
	})
	require.NoError(t, err)
	return layouts
}

func TestRenderLayouts_Exact(t *testing.T) {
	want := `{
  "layouts": {
    "Rare": {
      "weight": 7,
      "slots": {
        "Rare": 1,
        "Common": 11,
        "Uncommon": 3
      }
    },
    "Mythic": {
      "weight": 1,
      "slots": {
        "Mythic": 1,
        "Common": 11,
        "Uncommon": 3
      }
    }
  }
}`
	assert.Equal(t, want, draftmancer.RenderLayouts(defaultLayouts(t)))
}

func TestRenderLayouts_IsJSON(t *testing.T) {
	var doc struct {
		Layouts map[string]struct {
			Weight int            `json:"weight"`
			Slots  map[string]int `json:"slots"`
		} `json:"layouts"`
	}
	require.NoError(t, json.Unmarshal([]byte(draftmancer.RenderLayouts(defaultLayouts(t))), &doc))

	require.Len(t, doc.Layouts, 2)
	assert.Equal(t, 7, doc.Layouts["Rare"].Weight)
	assert.Equal(t, map[string]int{"Mythic": 1, "Common": 11, "Uncommon": 3}, doc.Layouts["Mythic"].Slots)

	empty := draftmancer.RenderLayouts(draft.Layouts{})
	assert.True(t, json.Valid([]byte(empty)), empty)
}

func TestRenderSettings(t *testing.T) {
	catalog := draft.NewCatalog()
	catalog.Add(draft.Mythic, "Humility")
	catalog.Add(draft.Common, "Icatian Moneychanger")
	catalog.Add(draft.Common, "Benalish Hero")

	out := draftmancer.RenderSettings(defaultLayouts(t), catalog)

	require.True(t, strings.HasPrefix(out, "[Settings]\n{\n  \"layouts\""))
	assert.True(t, strings.HasSuffix(out, "}\n[Common]\nIcatian Moneychanger\nBenalish Hero\n[Mythic]\nHumility\n"), out)
	assert.NotContains(t, out, "[Uncommon]")
}

func TestRenderArchiveList(t *testing.T) {
	out := draftmancer.RenderArchiveList([]string{"A", "B"}, []string{"A"})

	want := "[Layouts]\n- Archive (1)\n\t14 Cubed\n\t1 Archived\n[Cubed]\nA\nB\n[Archived]\nA\n"
	assert.Equal(t, want, out)

	sections := splitSections(out)
	assert.Equal(t, []string{"A", "B"}, sections["Cubed"])
	assert.Equal(t, []string{"A"}, sections["Archived"])
}

func TestRenderArchiveList_RepeatsKept(t *testing.T) {
	out := draftmancer.RenderArchiveList([]string{"Forest"}, []string{"Forest", "Forest"})
	assert.Equal(t, []string{"Forest", "Forest"}, splitSections(out)["Archived"])
}

func splitSections(text string) map[string][]string {
	out := map[string][]string{}
	cur := ""
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			cur = strings.Trim(line, "[]")
			out[cur] = nil
			continue
		}
		out[cur] = append(out[cur], line)
	}
	return out
}
