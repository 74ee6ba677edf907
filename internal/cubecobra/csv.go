package cubecobra

import (
	"strings"

	"github.com/cognivore/cube-with-archive/internal/draft"
)

// Column positions in the CubeCobra CSV export:
//
//	name,CMC,Type,Color,Set,Collector Number,Rarity,Color Category,status,...
const (
	colName   = 0
	colRarity = 6
)

// ParseCSV buckets the cards of a CubeCobra CSV export by rarity. The header
// line is skipped unchecked. A short row, blank ones included, or an unknown
// rarity token aborts the whole parse.
func ParseCSV(text string) (*draft.Catalog, error) {
	catalog := draft.NewCatalog()

	for i, line := range splitLines(text) {
		if i == 0 {
			continue
		}
		lineNo := i + 1

		fields := splitRecord(line)
		if len(fields) <= colRarity {
			return nil, &draft.MalformedRowError{Line: lineNo, Fields: len(fields), Want: colRarity + 1}
		}

		name := fields[colName]
		token := fields[colRarity]
		r, ok := draft.ParseRarity(token)
		if !ok {
			return nil, &draft.UnknownRarityError{Line: lineNo, Card: name, Token: token}
		}
		catalog.Add(r, name)
	}

	return catalog, nil
}

// splitRecord splits on commas outside double quotes. Quote characters only
// toggle quoting and never reach the output; "" is not an escape.
func splitRecord(line string) []string {
	var fields []string
	var cur strings.Builder
	quoted := false

	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
		case r == ',' && !quoted:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	return append(fields, cur.String())
}

// splitLines splits on \n, drops a trailing \r from each line and does not
// return an empty final line for text ending in a newline.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
