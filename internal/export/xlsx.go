package export

import (
	"fmt"

	"github.com/UnknownOlympus/demeter/internal/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the worksheet name used for the report.
const DefaultSheet = "Nearby restaurants"

var headers = []any{
	"Name", "Formal name", "Address", "City", "Zip code", "Category", "Start date",
	"Latitude", "Longitude", "Distance (mi)",
}

// XLSX writes reporter matches to a spreadsheet.
type XLSX struct {
	path  string
	sheet string
}

// NewXLSX creates an exporter writing to path. An empty sheet selects DefaultSheet.
func NewXLSX(path, sheet string) *XLSX {
	if sheet == "" {
		sheet = DefaultSheet
	}
	return &XLSX{path: path, sheet: sheet}
}

// WriteMatches saves one row per match, in the given order, below a header row.
func (x *XLSX) WriteMatches(matches []models.Match) error {
	file := excelize.NewFile()
	defer file.Close()

	index, err := file.NewSheet(x.sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	sw, err := file.NewStreamWriter(x.sheet)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	if err = sw.SetRow("A1", headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, m := range matches {
		cell, errCell := excelize.CoordinatesToCellName(1, i+2)
		if errCell != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, errCell)
		}
		b := m.Business
		row := []any{
			b.DisplayName(), b.FormalName, b.Address, b.City, b.ZipCode, b.Category, b.StartDate,
			b.Latitude, b.Longitude, m.Distance,
		}
		if err = sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err = sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}

	file.SetActiveSheet(index)
	if x.sheet != "Sheet1" {
		file.DeleteSheet("Sheet1")
	}

	if err = file.SaveAs(x.path); err != nil {
		return fmt.Errorf("failed to save %s: %w", x.path, err)
	}

	return nil
}
