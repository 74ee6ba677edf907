package draftmancer

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/cognivore/cube-with-archive/internal/draft"
)

// Pool names of the archive list; the layout line refers to the sections by name.
const (
	ArchiveLayout = "Archive"
	CubedPool     = "Cubed"
	ArchivedPool  = "Archived"

	cubedPerPack    = 14
	archivedPerPack = 1
)

// RenderSettings emits a [Settings] section carrying the layouts JSON,
// followed by one section per catalog rarity.
func RenderSettings(layouts draft.Layouts, catalog *draft.Catalog) string {
	var b strings.Builder
	b.WriteString("[Settings]\n")
	b.WriteString(RenderLayouts(layouts))
	b.WriteString("\n")
	b.WriteString(RenderCatalog(catalog))
	return b.String()
}

// RenderLayouts renders
//
//	{
//	  "layouts": {
//	    "Rare": {
//	      "weight": 7,
//	      "slots": {
//	        "Rare": 1,
//	        "Common": 11
//	      }
//	    }
//	  }
//	}
func RenderLayouts(layouts draft.Layouts) string {
	var b strings.Builder
	b.WriteString("{\n  \"layouts\": {")

	all := layouts.All()
	for i, nl := range all {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("\n    ")
		b.WriteString(quote(nl.Name))
		b.WriteString(": {\n      \"weight\": ")
		b.WriteString(strconv.Itoa(nl.Weight))
		b.WriteString(",\n      \"slots\": {")
		for j, sv := range nl.Slots {
			if j > 0 {
				b.WriteString(",")
			}
			b.WriteString("\n        ")
			b.WriteString(quote(sv.Rarity.String()))
			b.WriteString(": ")
			b.WriteString(strconv.Itoa(sv.Count))
		}
		if len(nl.Slots) > 0 {
			b.WriteString("\n      ")
		}
		b.WriteString("}\n    }")
	}
	if len(all) > 0 {
		b.WriteString("\n  ")
	}
	b.WriteString("}\n}")
	return b.String()
}

func RenderCatalog(catalog *draft.Catalog) string {
	if catalog == nil {
		return ""
	}
	var b strings.Builder
	for _, r := range catalog.Rarities() {
		writeSection(&b, r.String(), catalog.Cards(r))
	}
	return b.String()
}

// RenderArchiveList renders the single "Archive" layout: 14 cards from the
// unique pool and 1 from the pool of repeated copies.
func RenderArchiveList(unique, duplicates []string) string {
	var b strings.Builder
	b.WriteString("[Layouts]\n")
	b.WriteString("- " + ArchiveLayout + " (1)\n")
	b.WriteString("\t" + strconv.Itoa(cubedPerPack) + " " + CubedPool + "\n")
	b.WriteString("\t" + strconv.Itoa(archivedPerPack) + " " + ArchivedPool + "\n")
	writeSection(&b, CubedPool, unique)
	writeSection(&b, ArchivedPool, duplicates)
	return b.String()
}

func writeSection(b *strings.Builder, name string, cards []string) {
	b.WriteString("[")
	b.WriteString(name)
	b.WriteString("]\n")
	for _, c := range cards {
		b.WriteString(c)
		b.WriteString("\n")
	}
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
