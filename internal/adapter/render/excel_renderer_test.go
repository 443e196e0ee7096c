package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/controlhs/datacore/internal/core/domain"
)

func renderAndOpen(t *testing.T, doc domain.ReportDocument) *excelize.File {
	t.Helper()

	artifact, err := NewExcelRenderer().Render(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(artifact))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheetName, ref)
	if err != nil {
		t.Fatalf("get cell %s: %v", ref, err)
	}
	return v
}

func TestRender_HeaderMetadata(t *testing.T) {
	doc := domain.ReportDocument{
		GeneratedOn:   time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC),
		RequesterName: "ana",
	}

	f := renderAndOpen(t, doc)

	if got := cell(t, f, "B1"); got != "ana" {
		t.Errorf("requester: expected ana, got %q", got)
	}
	if got := cell(t, f, "B2"); got != "2026-08-28" {
		t.Errorf("generated on: expected 2026-08-28, got %q", got)
	}
	if got := cell(t, f, "A4"); got != "Product" {
		t.Errorf("column header: expected Product, got %q", got)
	}
}

func TestRender_RowsInDocumentOrder(t *testing.T) {
	doc := domain.ReportDocument{
		GeneratedOn:   time.Now(),
		RequesterName: "ana",
		Rows: []domain.ReportRow{
			{ProductName: "Masks", CurrentBalance: 0, RequestedQuantity: 10},
			{ProductName: "Gloves", CurrentBalance: 50, RequestedQuantity: 5},
		},
	}

	f := renderAndOpen(t, doc)

	if got := cell(t, f, "A5"); got != "Masks" {
		t.Errorf("row 1 name: expected Masks, got %q", got)
	}
	if got := cell(t, f, "C5"); got != "10" {
		t.Errorf("row 1 quantity: expected 10, got %q", got)
	}
	if got := cell(t, f, "A6"); got != "Gloves" {
		t.Errorf("row 2 name: expected Gloves, got %q", got)
	}
	if got := cell(t, f, "B6"); got != "50" {
		t.Errorf("row 2 balance: expected 50, got %q", got)
	}
}

func TestRender_EmptyDocumentStillProducesWorkbook(t *testing.T) {
	doc := domain.ReportDocument{
		GeneratedOn:   time.Now(),
		RequesterName: "",
	}

	f := renderAndOpen(t, doc)

	if got := cell(t, f, "A1"); got != "Requested By" {
		t.Errorf("expected metadata label, got %q", got)
	}
	if got := cell(t, f, "A5"); got != "" {
		t.Errorf("expected no data rows, got %q", got)
	}
}
