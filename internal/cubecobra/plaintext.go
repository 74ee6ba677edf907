package cubecobra

import "strings"

const mainboardMarker = "# mainboard"

// ParsePlaintext reads a CubeCobra plaintext export and returns the distinct
// mainboard cards in first-seen order, plus every repeated occurrence.
//
// "# mainboard" starts the mainboard section and any other "#" line ends it.
// Lines before the first marker count as mainboard.
func ParsePlaintext(text string) (unique []string, duplicates []string) {
	inMainboard := true
	seen := map[string]int{}

	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, mainboardMarker):
			inMainboard = true
		case strings.HasPrefix(line, "#"):
			inMainboard = false
		case inMainboard && line != "":
			seen[line]++
			if seen[line] == 1 {
				unique = append(unique, line)
			} else {
				duplicates = append(duplicates, line)
			}
		}
	}

	return unique, duplicates
}
