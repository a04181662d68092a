package export

import (
	"fmt"
	"time"
	"unicode/utf8"

	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/domain/status"
	"production_scheduler/internal/domain/visibility"

	"github.com/xuri/excelize/v2"
)

const (
	SheetName       = "My Orders"
	SpreadsheetMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	minColumnWidth = 10
	maxColumnWidth = 60
)

var spreadsheetHeader = []string{
	"Scheduled Date", "WO", "Quote", "PO Number", "Customer Name",
	"Model Description", "Price", "Status",
}

const (
	colDate  = 1
	colPrice = 7
)

// RenderSpreadsheet writes the owned events to a single-sheet workbook. SOLD
// events carry nothing exportable and are skipped. generatedAt is stored only in
// the workbook's document properties.
func RenderSpreadsheet(events []entities.CalendarEvent, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}
	stamp := generatedAt.UTC().Format(time.RFC3339)
	if err := f.SetDocProps(&excelize.DocProperties{
		Creator:  "production-scheduler",
		Title:    SheetName,
		Created:  stamp,
		Modified: stamp,
	}); err != nil {
		return nil, err
	}

	widths := make([]int, len(spreadsheetHeader))
	track := func(col int, text string) {
		if n := utf8.RuneCountInString(text); n > widths[col-1] {
			widths[col-1] = n
		}
	}

	header := make([]interface{}, len(spreadsheetHeader))
	for i, h := range spreadsheetHeader {
		header[i] = h
		track(i+1, h)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, err
	}

	row := 1
	for _, ev := range events {
		if ev.DetailLevel != entities.DetailOwned || ev.Owned == nil {
			continue
		}
		row++
		d := ev.Owned
		values := []interface{}{
			ev.Date,
			d.WorkOrderID,
			d.Quote,
			d.PONumber,
			d.CustomerName,
			d.ModelDescription,
			priceCell(d.Price),
			status.Label(d.StatusKey),
		}
		track(colDate, ev.Date.Format(entities.DateLayout))
		for i := 1; i < len(values); i++ {
			if i+1 == colPrice {
				track(colPrice, visibility.FormatPrice(d.Price))
				continue
			}
			track(i+1, fmt.Sprint(values[i]))
		}

		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, err
		}
	}

	if row > 1 {
		if err := applyColumnStyle(f, colDate, row, "yyyy-mm-dd"); err != nil {
			return nil, err
		}
		if err := applyColumnStyle(f, colPrice, row, `"$"#,##0.00`); err != nil {
			return nil, err
		}
	}

	for i, w := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(SheetName, name, name, float64(clampWidth(w+2))); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// priceCell stores numeric prices as numbers so the currency format applies.
func priceCell(raw string) interface{} {
	v, ok := visibility.ParsePrice(raw)
	if !ok {
		return raw
	}
	return v.InexactFloat64()
}

func applyColumnStyle(f *excelize.File, col, lastRow int, format string) error {
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return err
	}
	top, err := excelize.CoordinatesToCellName(col, 2)
	if err != nil {
		return err
	}
	bottom, err := excelize.CoordinatesToCellName(col, lastRow)
	if err != nil {
		return err
	}
	return f.SetCellStyle(SheetName, top, bottom, style)
}

func clampWidth(w int) int {
	if w < minColumnWidth {
		return minColumnWidth
	}
	if w > maxColumnWidth {
		return maxColumnWidth
	}
	return w
}
