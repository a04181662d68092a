package export

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/domain/status"
)

const PrintMIME = "text/html; charset=utf-8"

var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// Light cell tints per status; the border uses the status color itself.
var printTints = map[entities.StatusKey]string{
	entities.StatusOpen:       "#dbeafe",
	entities.StatusInProgress: "#fed7aa",
	entities.StatusCompleted:  "#dcfce7",
	entities.StatusOnHold:     "#e5e7eb",
	entities.StatusCancelled:  "#fee2e2",
	entities.StatusUnknown:    "#ccfbf1",
}

var weekdayHeaders = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

type printStatusStyle struct {
	Class  string
	Tint   string
	Border string
	Label  string
}

type printEvent struct {
	WorkOrderID string
	Customer    string
	Model       string
	Class       string
}

type printCell struct {
	Day    int
	Sold   bool
	Events []printEvent
}

type printPage struct {
	GeneratedAt string
	MonthLabel  string
	Customers   string
	Weekdays    []string
	Weeks       [][]printCell
	Styles      []printStatusStyle
	Legend      []printStatusStyle
	Sold        entities.Palette
}

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="generated-at" content="{{.GeneratedAt}}">
<title>{{.MonthLabel}} - {{.Customers}}</title>
<style>
@media print { @page { size: letter landscape; margin: 0.4in; } body { margin:0; } }
* { -webkit-print-color-adjust:exact !important; print-color-adjust:exact !important; }
body { font-family:Arial,sans-serif; padding:10px; background:white; max-width:10.2in; margin:0 auto; }
.header { text-align:center; margin-bottom:10px; }
.header h2 { margin:0; font-size:16px; color:#1e3a5f; font-weight:700; }
.header .sub { font-size:12px; color:#64748b; margin-top:4px; }
table { width:100%; border-collapse:collapse; table-layout:fixed; }
th { background:#2563eb; color:white; padding:6px; text-align:center; border:1px solid #999; font-size:11px; width:14.28%; }
td { border:1px solid #ccc; padding:5px; vertical-align:top; width:14.28%; height:110px; background:white; }
td.sold { background:#f8fafc; }
.dn { font-weight:bold; font-size:12px; color:#333; margin-bottom:4px; }
.ev { margin-bottom:4px; padding:4px; border-radius:3px; font-size:9px; line-height:1.3; }
{{range .Styles}}.s-{{.Class}} { background:{{.Tint}}; border-left:3px solid {{.Border}}; }
{{end}}.wo { font-weight:bold; font-size:10px; color:#000; }
.cu { font-size:9.5px; color:#1f2937; font-weight:500; }
.md { font-size:9px; color:#374151; }
.sold-badge { text-align:center; margin-top:8px; padding:5px; background:{{.Sold.Background}}; color:{{.Sold.Text}}; border-radius:3px; font-weight:bold; font-size:10px; }
.legend { margin-top:12px; padding:8px 12px; background:#f9fafb; border:1px solid #ddd; border-radius:4px; }
.lt { font-weight:bold; font-size:11px; margin-bottom:6px; }
.li { display:inline-flex; align-items:center; gap:5px; font-size:10px; margin-right:12px; }
.lc { width:14px; height:14px; border-radius:2px; display:inline-block; }
</style>
</head>
<body>
<div class="header">
  <h2>{{.MonthLabel}}</h2>
  <div class="sub">Production Schedule - <strong>{{.Customers}}</strong></div>
</div>
<table>
<thead><tr>{{range .Weekdays}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Weeks}}<tr>{{range .}}{{if eq .Day 0}}<td></td>{{else}}<td{{if .Sold}} class="sold"{{end}}><div class="dn">{{.Day}}</div>{{range .Events}}<div class="ev s-{{.Class}}"><div class="wo">WO: {{.WorkOrderID}}</div>{{if .Customer}}<div class="cu">{{.Customer}}</div>{{end}}{{if .Model}}<div class="md">{{.Model}}</div>{{end}}</div>{{end}}{{if .Sold}}<div class="sold-badge">SOLD</div>{{end}}</td>{{end}}{{end}}</tr>
{{end}}</tbody>
</table>
<div class="legend"><div class="lt">Legend:</div>
{{range .Legend}}  <div class="li"><span class="lc" style="background:{{.Border}}"></span> {{.Label}}</div>
{{end}}  <div class="li"><span class="lc" style="background:{{.Sold.Background}}"></span> SOLD - Date Unavailable</div>
</div>
</body>
</html>
`))

// RenderPrintHTML lays out one month as a Monday-first grid. Every day of the
// month gets a cell; events dated in other months are ignored. A day shows the
// SOLD badge only when it holds no owned event. generatedAt appears only in the
// generated-at meta tag.
func RenderPrintHTML(events []entities.CalendarEvent, year int, month time.Month, customers []string, generatedAt time.Time) ([]byte, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	owned := make(map[int][]printEvent)
	sold := make(map[int]bool)
	for _, ev := range events {
		y, m, d := ev.Date.Date()
		if y != year || m != month {
			continue
		}
		switch {
		case ev.DetailLevel == entities.DetailOwned && ev.Owned != nil:
			owned[d] = append(owned[d], printEvent{
				WorkOrderID: ev.Owned.WorkOrderID,
				Customer:    ev.Owned.CustomerName,
				Model:       ev.Owned.ModelDescription,
				Class:       status.CSSClass(ev.Owned.StatusKey),
			})
		case ev.DetailLevel == entities.DetailSold:
			sold[d] = true
		}
	}

	// Monday is column 0.
	offset := (int(first.Weekday()) + 6) % 7
	var weeks [][]printCell
	week := make([]printCell, offset, 7)
	for day := 1; day <= daysInMonth; day++ {
		week = append(week, printCell{
			Day:    day,
			Sold:   sold[day] && len(owned[day]) == 0,
			Events: owned[day],
		})
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]printCell, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, printCell{})
		}
		weeks = append(weeks, week)
	}

	page := printPage{
		GeneratedAt: generatedAt.UTC().Format(time.RFC3339),
		MonthLabel:  first.Format("January 2006"),
		Customers:   strings.Join(customers, ", "),
		Weekdays:    weekdayHeaders,
		Weeks:       weeks,
		Sold:        status.SoldPalette,
	}
	n := status.Default()
	for _, k := range append(append([]entities.StatusKey{}, status.DefaultTable.Keys...), status.DefaultTable.Fallback) {
		st := printStatusStyle{
			Class:  status.CSSClass(k),
			Tint:   printTints[k],
			Border: n.Color(k).Background,
			Label:  status.Label(k),
		}
		if st.Tint == "" {
			st.Tint = "#f1f5f9"
		}
		page.Styles = append(page.Styles, st)
		if k != status.DefaultTable.Fallback {
			page.Legend = append(page.Legend, st)
		}
	}

	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
