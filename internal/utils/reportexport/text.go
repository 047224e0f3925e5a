package reportexport

import (
	"bytes"
	"fmt"

	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	"github.com/SscSPs/pres_finance_portal/internal/utils"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderText renders the report as plain-text tables: the summary first,
// then the income group, the expense group and the receipts.
func RenderText(report *domain.WalletReport) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n\n", Title(report))

	summary := newTable(&buf)
	summary.AppendRows([]table.Row{
		{"Beginning Cash", utils.FormatAmount(report.BeginningCash)},
		{"Total Income", utils.FormatAmount(report.TotalIncome)},
		{"Total Expenses", utils.FormatAmount(report.TotalExpenses)},
	})
	summary.AppendFooter(table.Row{"Ending Cash", utils.FormatAmount(report.EndingCash)})
	summary.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	summary.Render()

	writeLedger(&buf, "INCOME", report.Income, utils.FormatAmount(report.TotalIncome))
	writeLedger(&buf, "EXPENSES", report.Expenses, utils.FormatAmount(report.TotalExpenses.Neg()))

	fmt.Fprint(&buf, "\nRECEIPTS\n")
	receipts := newTable(&buf)
	receipts.AppendHeader(table.Row{"Date", "Name", "Description"})
	for _, r := range report.Receipts {
		receipts.AppendRow(table.Row{r.Date.Format(domain.DateLayout), r.Name, r.Description})
	}
	receipts.Render()

	return buf.String()
}

// Title is the heading shared by every rendering.
func Title(report *domain.WalletReport) string {
	return fmt.Sprintf("FINANCIAL REPORT - %s (%s) - %s", report.WalletName, report.YearMonth, report.Status)
}

func writeLedger(buf *bytes.Buffer, heading string, txns []domain.Transaction, total string) {
	fmt.Fprintf(buf, "\n%s\n", heading)
	t := newTable(buf)
	t.AppendHeader(table.Row{"Date", "Event", "Description", "Amount"})
	for _, txn := range txns {
		t.AppendRow(table.Row{
			txn.Date.Format(domain.DateLayout),
			txn.EventLabel,
			txn.Description,
			utils.FormatAmount(txn.Amount),
		})
	}
	t.AppendSeparator()
	t.AppendFooter(table.Row{"", "", "Total", total})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 4, Align: text.AlignRight}})
	t.Render()
}

func newTable(buf *bytes.Buffer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(buf)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	return t
}
