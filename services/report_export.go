package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"github.com/mattwilkerson1121/Asinsights/models"
)

type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

func ParseExportFormat(raw string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(raw))); f {
	case "", ExportCSV:
		return ExportCSV, nil
	case ExportPDF:
		return ExportPDF, nil
	}
	return "", fmt.Errorf("unsupported export format %q", raw)
}

func (f ExportFormat) ContentType() string {
	if f == ExportPDF {
		return "application/pdf"
	}
	return "text/csv"
}

var exportHeader = []string{"Metric", "Value", "Change", "Orders"}

func ordersCell(row models.ReportRow) string {
	if row.Orders == 0 {
		return "-"
	}
	return strconv.Itoa(row.Orders)
}

// ExportReportCSV writes rows with a Metric,Value,Change,Orders header
func ExportReportCSV(rows []models.ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write([]string{row.Metric, row.Value, row.Change, ordersCell(row)}); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportReportPDF renders rows as a one-table A4 document
func ExportReportPDF(title string, dateRange models.DateRange, rows []models.ReportRow, generatedAt time.Time) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}
	green := color.Color{Red: 22, Green: 163, Blue: 74}
	red := color.Color{Red: 220, Green: 38, Blue: 38}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text(strings.ToUpper(title), props.Text{
				Size:  20,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Date range: "+dateRange.String(), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text("Generated: "+generatedAt.Format("Jan 02, 2006 15:04"), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	headerCell := func(width uint, text string, align consts.Align) {
		m.Col(width, func() {
			m.Text(text, props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: align,
			})
		})
	}
	m.Row(6, func() {
		headerCell(6, exportHeader[0], consts.Left)
		headerCell(2, exportHeader[1], consts.Right)
		headerCell(2, exportHeader[2], consts.Right)
		headerCell(2, exportHeader[3], consts.Right)
	})
	m.Line(1)

	if len(rows) == 0 {
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text("Select at least one metric to generate your report", props.Text{
					Size:  9,
					Color: mediumGray,
				})
			})
		})
	}

	for _, row := range rows {
		changeColor := mediumGray
		switch row.Trend {
		case models.TrendUp:
			changeColor = green
		case models.TrendDown:
			changeColor = red
		}
		row := row
		m.Row(7, func() {
			m.Col(6, func() {
				m.Text(row.Metric, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(2, func() {
				m.Text(row.Value, props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(row.Change, props.Text{Size: 9, Color: changeColor, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(ordersCell(row), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
		})
	}

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return &buf, nil
}
