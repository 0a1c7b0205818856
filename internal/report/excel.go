package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	appLog "calstats/internal/log"
	"calstats/internal/stats"
)

const (
	cornerLabel = "Date / Regex pattern"

	headerFill = "E2EFDA" // day labels, row 1
	labelFill  = "BDD7EE" // pattern names, column A
	dataFill   = "FCE4D6" // hour cells

	columnWidth = 15
)

// WriteExcel writes the day-by-pattern matrix as a styled xlsx workbook:
// one column per calendar day of the range, one row per pattern, hour totals
// rounded to one decimal with "-" for empty cells.
func WriteExcel(path string, m *stats.Matrix) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	if err := f.SetCellValue(sheet, "A1", cornerLabel); err != nil {
		return fmt.Errorf("excel: corner cell: %w", err)
	}
	for i, label := range m.Labels {
		cell, err := excelize.CoordinatesToCellName(i+2, 1)
		if err != nil {
			return fmt.Errorf("excel: header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			return fmt.Errorf("excel: header cell %s: %w", cell, err)
		}
	}

	for ri, row := range m.Rows {
		nameCell, err := excelize.CoordinatesToCellName(1, ri+2)
		if err != nil {
			return fmt.Errorf("excel: label cell: %w", err)
		}
		if err := f.SetCellValue(sheet, nameCell, row.Pattern); err != nil {
			return fmt.Errorf("excel: label cell %s: %w", nameCell, err)
		}
		for ci, hours := range row.Hours {
			cell, err := excelize.CoordinatesToCellName(ci+2, ri+2)
			if err != nil {
				return fmt.Errorf("excel: data cell: %w", err)
			}
			var value any = "-"
			if hours > 0 {
				value = hours
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("excel: data cell %s: %w", cell, err)
			}
		}
	}

	if err := applyStyles(f, sheet, len(m.Labels), len(m.Rows)); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("excel: save %s: %w", path, err)
	}
	appLog.Info("excel report saved", "path", path, "days", len(m.Labels), "patterns", len(m.Rows))
	return nil
}

func applyStyles(f *excelize.File, sheet string, days, patterns int) error {
	solid := func(color string) excelize.Fill {
		return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Fill: solid(headerFill)})
	if err != nil {
		return fmt.Errorf("excel: header style: %w", err)
	}
	labelStyle, err := f.NewStyle(&excelize.Style{Fill: solid(labelFill)})
	if err != nil {
		return fmt.Errorf("excel: label style: %w", err)
	}
	dataStyle, err := f.NewStyle(&excelize.Style{
		Fill: solid(dataFill),
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("excel: data style: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(days + 1)
	if err != nil {
		return fmt.Errorf("excel: last column: %w", err)
	}
	lastRow := patterns + 1

	if days > 0 {
		if err := f.SetCellStyle(sheet, "B1", fmt.Sprintf("%s1", lastCol), headerStyle); err != nil {
			return fmt.Errorf("excel: header row style: %w", err)
		}
	}
	if patterns > 0 {
		if err := f.SetCellStyle(sheet, "A2", fmt.Sprintf("A%d", lastRow), labelStyle); err != nil {
			return fmt.Errorf("excel: label column style: %w", err)
		}
	}
	if days > 0 && patterns > 0 {
		if err := f.SetCellStyle(sheet, "B2", fmt.Sprintf("%s%d", lastCol, lastRow), dataStyle); err != nil {
			return fmt.Errorf("excel: data range style: %w", err)
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	}); err != nil {
		return fmt.Errorf("excel: freeze panes: %w", err)
	}

	if err := f.SetColWidth(sheet, "A", lastCol, columnWidth); err != nil {
		return fmt.Errorf("excel: column width: %w", err)
	}
	return nil
}
