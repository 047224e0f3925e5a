package reportexport

import (
	"fmt"

	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet the printable report is written to.
const SheetName = "Report"

// RenderXLSX renders the report as a single-sheet workbook ready for printing.
func RenderXLSX(report *domain.WalletReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}

	w := &sheetWriter{f: f, bold: bold, row: 1}
	w.line(true, Title(report))
	w.row++
	w.line(true, "Beginning Cash", report.BeginningCash.InexactFloat64())
	w.line(false, "Total Income", report.TotalIncome.InexactFloat64())
	w.line(false, "Total Expenses", report.TotalExpenses.InexactFloat64())
	w.line(true, "Ending Cash", report.EndingCash.InexactFloat64())

	w.ledger("INCOME", report.Income)
	w.ledger("EXPENSES", report.Expenses)

	w.row++
	w.line(true, "RECEIPTS")
	w.line(true, "Date", "Name", "Description")
	for _, r := range report.Receipts {
		w.line(false, r.Date.Format(domain.DateLayout), r.Name, r.Description)
	}
	if w.err != nil {
		return nil, w.err
	}

	if err := f.SetColWidth(SheetName, "A", "A", 14); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(SheetName, "B", "C", 36); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter appends rows to the report sheet and keeps the first error.
type sheetWriter struct {
	f    *excelize.File
	bold int
	row  int
	err  error
}

func (w *sheetWriter) line(bold bool, values ...any) {
	if w.err != nil {
		return
	}
	start := fmt.Sprintf("A%d", w.row)
	if err := w.f.SetSheetRow(SheetName, start, &values); err != nil {
		w.err = fmt.Errorf("write row %d: %w", w.row, err)
		return
	}
	if bold {
		end, _ := excelize.CoordinatesToCellName(len(values), w.row)
		if err := w.f.SetCellStyle(SheetName, start, end, w.bold); err != nil {
			w.err = fmt.Errorf("style row %d: %w", w.row, err)
			return
		}
	}
	w.row++
}

func (w *sheetWriter) ledger(heading string, txns []domain.Transaction) {
	w.row++
	w.line(true, heading)
	w.line(true, "Date", "Event", "Description", "Amount")
	for _, txn := range txns {
		w.line(false, txn.Date.Format(domain.DateLayout), txn.EventLabel, txn.Description, txn.Amount.InexactFloat64())
	}
}
