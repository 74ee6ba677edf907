package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/cognivore/cube-with-archive/internal/draft"
)

const (
	cardsSheet   = "Cards"
	layoutsSheet = "Layouts"
)

// ExportCatalogXLSX writes a workbook with one row per card and one row per
// layout, for checking a cube conversion by eye.
func ExportCatalogXLSX(path string, cubeID string, catalog *draft.Catalog, layouts draft.Layouts) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create xlsx dir: %w", err)
		}
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	_ = f.SetSheetName("Sheet1", cardsSheet)
	if _, err := f.NewSheet(layoutsSheet); err != nil {
		return fmt.Errorf("xlsx new sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	// Cards
	cardsHeader := []string{"Cube", "Rarity", "Name"}
	if err := writeRow(f, cardsSheet, 1, cardsHeader); err != nil {
		return err
	}
	if err := f.SetCellStyle(cardsSheet, "A1", "C1", headerStyle); err != nil {
		return err
	}
	row := 2
	if catalog != nil {
		for _, r := range catalog.Rarities() {
			for _, name := range catalog.Cards(r) {
				if err := writeRow(f, cardsSheet, row, []string{cubeID, r.String(), name}); err != nil {
					return err
				}
				row++
			}
		}
	}
	if err := f.SetColWidth(cardsSheet, "A", "B", 14); err != nil {
		return err
	}
	if err := f.SetColWidth(cardsSheet, "C", "C", 40); err != nil {
		return err
	}

	// Layouts: one column per rarity in severity order.
	rarities := draft.Rarities()
	layoutsHeader := []string{"Layout", "Weight"}
	for _, r := range rarities {
		layoutsHeader = append(layoutsHeader, r.String())
	}
	if err := writeRow(f, layoutsSheet, 1, layoutsHeader); err != nil {
		return err
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(layoutsHeader), 1)
	if err := f.SetCellStyle(layoutsSheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for i, nl := range layouts.All() {
		counts := map[draft.Rarity]int{}
		for _, sv := range nl.Slots {
			counts[sv.Rarity] += sv.Count
		}
		values := []interface{}{nl.Name, nl.Weight}
		for _, r := range rarities {
			values = append(values, counts[r])
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(layoutsSheet, cell, &values); err != nil {
			return fmt.Errorf("xlsx layouts row: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx save %s: %w", path, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("xlsx %s row %d: %w", sheet, row, err)
	}
	return nil
}
