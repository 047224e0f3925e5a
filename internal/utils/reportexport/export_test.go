package reportexport

import (
	"bytes"
	"testing"
	"time"

	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() *domain.WalletReport {
	day := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)
	return &domain.WalletReport{
		WalletID:      "2026-02",
		WalletName:    "FEBRUARY",
		YearMonth:     "2026-02",
		BeginningCash: decimal.NewFromInt(1000),
		TotalIncome:   decimal.RequireFromString("511.92"),
		TotalExpenses: decimal.NewFromInt(73),
		EndingCash:    decimal.RequireFromString("1438.92"),
		Income: []domain.Transaction{{
			WalletID:    "2026-02",
			EventLabel:  "FEBRUARY",
			Description: "24 x Membership Fee - spring intake",
			Amount:      decimal.RequireFromString("511.92"),
			Date:        day,
			Type:        domain.Income,
		}},
		Expenses: []domain.Transaction{{
			WalletID:    "2026-02",
			EventLabel:  "FEBRUARY",
			Description: "1 x Snacks - assembly",
			Amount:      decimal.NewFromInt(-73),
			Date:        day,
			Type:        domain.Expense,
		}},
		Receipts: []domain.Receipt{{WalletID: "2026-02", Name: "OR-0001", Description: "snacks", Date: day}},
		Status:   domain.ReportGenerated,
	}
}

func TestRenderText(t *testing.T) {
	out := RenderText(sampleReport())

	assert.Contains(t, out, "FINANCIAL REPORT - FEBRUARY (2026-02) - GENERATED")
	assert.Contains(t, out, "1438.92")
	assert.Contains(t, out, "24 x Membership Fee - spring intake")
	assert.Contains(t, out, "-73.00")
	assert.Contains(t, out, "OR-0001")
	assert.Less(t, bytes.Index([]byte(out), []byte("INCOME")), bytes.Index([]byte(out), []byte("EXPENSES")))
}

func TestRenderXLSX(t *testing.T) {
	data, err := RenderXLSX(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "FINANCIAL REPORT - FEBRUARY (2026-02) - GENERATED", rows[0][0])

	var descriptions []string
	for _, row := range rows {
		if len(row) >= 3 {
			descriptions = append(descriptions, row[2])
		}
	}
	assert.Contains(t, descriptions, "24 x Membership Fee - spring intake")
	assert.Contains(t, descriptions, "1 x Snacks - assembly")

	ending, err := f.GetCellValue(SheetName, "B6")
	require.NoError(t, err)
	assert.Equal(t, "1438.92", ending)
}

func TestRenderXLSX_EmptyReport(t *testing.T) {
	data, err := RenderXLSX(&domain.WalletReport{WalletName: "AUGUST", YearMonth: "2025-08", Status: domain.ReportGenerated})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	title, err := f.GetCellValue(SheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "FINANCIAL REPORT - AUGUST (2025-08) - GENERATED", title)
}
