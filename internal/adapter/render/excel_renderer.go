package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/controlhs/datacore/internal/core/domain"
)

const (
	sheetName = "Sheet1"

	// first data row, after the metadata block and column headers
	dataRowOffset = 5
)

// ExcelRenderer turns a report document into an xlsx workbook. Row
// order in the sheet follows the document's row order exactly.
type ExcelRenderer struct{}

func NewExcelRenderer() *ExcelRenderer {
	return &ExcelRenderer{}
}

func (r *ExcelRenderer) Render(doc domain.ReportDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(sheetName); err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}

	f.SetCellValue(sheetName, "A1", "Requested By")
	f.SetCellValue(sheetName, "B1", doc.RequesterName)
	f.SetCellValue(sheetName, "A2", "Generated On")
	f.SetCellValue(sheetName, "B2", doc.GeneratedOn.Format("2006-01-02"))

	f.SetCellValue(sheetName, "A4", "Product")
	f.SetCellValue(sheetName, "B4", "Current Balance")
	f.SetCellValue(sheetName, "C4", "Requested Quantity")

	for i, row := range doc.Rows {
		f.SetCellValue(sheetName, "A"+fmt.Sprint(i+dataRowOffset), row.ProductName)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(i+dataRowOffset), row.CurrentBalance)
		f.SetCellValue(sheetName, "C"+fmt.Sprint(i+dataRowOffset), row.RequestedQuantity)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
