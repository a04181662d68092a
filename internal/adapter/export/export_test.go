package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/domain/visibility"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var generatedAt = time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)

func fixtureEvents() []entities.CalendarEvent {
	orders := []entities.Order{
		{WorkOrderID: "W1", CustomerName: "Acme", ScheduledDate: "2024-03-05", Status: "in progress",
			ModelDescription: "53ft Reefer", PONumber: "PO-9", Quote: "Q-1", Price: "1234.5"},
		{WorkOrderID: "W2", CustomerName: "Other", ScheduledDate: "2024-03-06", Status: "DONE",
			ModelDescription: "Secret Model", PONumber: "PO-SECRET", Price: "999"},
		{WorkOrderID: "W3", CustomerName: "Acme", ScheduledDate: "2024-04-02", Status: "open", Price: "call us"},
		{WorkOrderID: "W4", CustomerName: "Other", ScheduledDate: "2024-03-05", Status: "open"},
		{WorkOrderID: "W5", CustomerName: "Acme", ScheduledDate: "not-a-date"},
	}
	return visibility.DeriveEvents(orders, visibility.NewPermittedCustomers("Acme"))
}

func TestRenderSpreadsheet(t *testing.T) {
	data, err := RenderSpreadsheet(fixtureEvents(), generatedAt)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus the two owned events")
	assert.Equal(t, spreadsheetHeader, rows[0])

	assert.Equal(t, "2024-03-05", rows[1][0])
	assert.Equal(t, "W1", rows[1][1])
	assert.Equal(t, "Acme", rows[1][4])
	assert.Equal(t, "In Progress", rows[1][7])
	assert.Equal(t, "W3", rows[2][1])
	assert.Equal(t, "call us", rows[2][6])

	raw, err := f.GetCellValue(SheetName, "G2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "1234.5", raw)

	for _, row := range rows {
		for _, cell := range row {
			assert.NotContains(t, cell, "Other")
			assert.NotContains(t, cell, "SECRET")
		}
	}

	width, err := f.GetColWidth(SheetName, "A")
	require.NoError(t, err)
	assert.Equal(t, 16.0, width)
	width, err = f.GetColWidth(SheetName, "C")
	require.NoError(t, err)
	assert.Equal(t, 10.0, width)

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T08:30:00Z", props.Created)
}

func TestRenderSpreadsheet_Empty(t *testing.T) {
	data, err := RenderSpreadsheet(nil, generatedAt)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestRenderSpreadsheet_Deterministic(t *testing.T) {
	events := fixtureEvents()
	a, err := RenderSpreadsheet(events, generatedAt)
	require.NoError(t, err)
	b, err := RenderSpreadsheet(events, generatedAt)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same events and timestamp give identical bytes")

	c, err := RenderSpreadsheet(events, generatedAt.Add(time.Hour))
	require.NoError(t, err)

	before, after := xlsxParts(t, a), xlsxParts(t, c)
	require.Equal(t, len(before), len(after))
	for name, content := range before {
		other, ok := after[name]
		require.True(t, ok, "part %s missing", name)
		if name == "docProps/core.xml" {
			assert.NotEqual(t, content, other)
			continue
		}
		assert.Equal(t, content, other, "part %s changed with the timestamp", name)
	}
}

func xlsxParts(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	parts := make(map[string][]byte, len(r.File))
	for _, f := range r.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		parts[f.Name] = content
	}
	return parts
}

func TestClampWidth(t *testing.T) {
	assert.Equal(t, 10, clampWidth(3))
	assert.Equal(t, 42, clampWidth(42))
	assert.Equal(t, 60, clampWidth(400))
}

func TestRenderPrintHTML(t *testing.T) {
	out, err := RenderPrintHTML(fixtureEvents(), 2024, time.March, []string{"Acme"}, generatedAt)
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "<h2>March 2024</h2>")
	assert.Contains(t, html, `<meta name="generated-at" content="2024-03-01T08:30:00Z">`)
	assert.Contains(t, html, "WO: W1")
	assert.Contains(t, html, `class="ev s-inprogress"`)

	// April event is out of range.
	assert.NotContains(t, html, "W3")

	// Masked rows leak nothing.
	for _, leak := range []string{"Other", "W2", "W4", "Secret Model", "PO-SECRET"} {
		assert.NotContains(t, html, leak)
	}

	// The 5th has an owned event and a SOLD row: owned wins. The 6th is SOLD only.
	assert.Equal(t, 1, strings.Count(html, `<td class="sold"><div class="dn">6</div>`))
	assert.Equal(t, 1, strings.Count(html, `<div class="sold-badge">SOLD</div>`))
	assert.Contains(t, html, `<td><div class="dn">5</div>`)

	// Every day of the month is present, including empty ones.
	for _, d := range []string{"1", "2", "15", "31"} {
		assert.Contains(t, html, `<div class="dn">`+d+`</div>`)
	}
	assert.NotContains(t, html, `<div class="dn">32</div>`)
}

func TestRenderPrintHTML_Grid(t *testing.T) {
	// March 2024 starts on a Friday: four leading blanks, five weeks.
	out, err := RenderPrintHTML(nil, 2024, time.March, nil, generatedAt)
	require.NoError(t, err)
	html := string(out)

	body := html[strings.Index(html, "<tbody>"):strings.Index(html, "</tbody>")]
	assert.Equal(t, 5, strings.Count(body, "<tr>"))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(strings.TrimPrefix(body, "<tbody>")),
		`<tr><td></td><td></td><td></td><td></td><td><div class="dn">1</div>`))
	assert.Contains(t, html, "<th>Monday</th><th>Tuesday</th>")

	// September 2024 starts on a Sunday and spans six weeks.
	out, err = RenderPrintHTML(nil, 2024, time.September, nil, generatedAt)
	require.NoError(t, err)
	body = string(out)
	body = body[strings.Index(body, "<tbody>"):strings.Index(body, "</tbody>")]
	assert.Equal(t, 6, strings.Count(body, "<tr>"))
}

func TestRenderPrintHTML_Deterministic(t *testing.T) {
	events := fixtureEvents()
	a, err := RenderPrintHTML(events, 2024, time.March, []string{"Acme"}, generatedAt)
	require.NoError(t, err)
	b, err := RenderPrintHTML(events, 2024, time.March, []string{"Acme"}, generatedAt)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// Only the generated-at tag changes with the timestamp.
	c, err := RenderPrintHTML(events, 2024, time.March, []string{"Acme"}, generatedAt.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t,
		strings.Replace(string(a), "2024-03-01T08:30:00Z", "", 1),
		strings.Replace(string(c), "2024-03-01T09:30:00Z", "", 1))
}

func TestRenderPrintHTML_Legend(t *testing.T) {
	out, err := RenderPrintHTML(nil, 2024, time.March, nil, generatedAt)
	require.NoError(t, err)
	html := string(out)
	for _, label := range []string{"Open", "In Progress", "Completed", "On Hold", "Cancelled", "SOLD - Date Unavailable"} {
		assert.Contains(t, html, "</span> "+label+"</div>")
	}
	assert.NotContains(t, html, "</span> Unknown</div>")
}

func TestRenderPrintHTML_InvalidMonth(t *testing.T) {
	_, err := RenderPrintHTML(nil, 2024, 13, nil, generatedAt)
	assert.ErrorIs(t, err, ErrInvalidMonth)
	_, err = RenderPrintHTML(nil, 2024, 0, nil, generatedAt)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}
