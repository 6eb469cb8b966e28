package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/demetriusmayo/PathOfSearching/internal/model"
	"github.com/xuri/excelize/v2"
)

// Renderer writes resolution reports to their output targets
type Renderer struct{}

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON writes the report as indented JSON. An empty or "-" path writes
// to stdout.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if path == "" || path == "-" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderXLSX writes the report as a worksheet, one row per input line
func (r *Renderer) RenderXLSX(report *model.Report, path string) error {
	f := excelize.NewFile()
	sheet := "Resolutions"
	_ = f.SetSheetName("Sheet1", sheet)

	headers := []string{"Line", "Normalized", "Matched", "Phrase", "Targets", "Values", "Remainder"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, h)
	}

	headerStyleID, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "G1", headerStyleID); err != nil {
		return err
	}

	for i, lr := range report.Lines {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), lr.Raw)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), lr.Normalized)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), lr.Matched)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), lr.Phrase)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), strings.Join(lr.Targets, ", "))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), formatValues(lr.Values))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), lr.Remainder)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save worksheet: %w", err)
	}
	return nil
}

func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
	}
	return strings.Join(parts, ", ")
}
