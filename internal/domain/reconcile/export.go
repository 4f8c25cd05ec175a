package reconcile

import (
	"io"

	"github.com/xuri/excelize/v2"

	"ricemill/internal/core/types"
)

const exportSheet = "DO Balance"

var exportHeaders = []string{
	"DO Number",
	"Committee Center",
	"Issue Date",
	"Total",
	"Inward Lifting",
	"Sales Lifting",
	"Total Lifting",
	"Balance",
	"Status",
}

// WriteXLSX writes the reconciled orders as a spreadsheet.
func WriteXLSX(balances []OrderBalance, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return err
		}
	}

	for row, b := range balances {
		values := []any{
			b.Order.DoNumber,
			b.Order.CommitteeCenter,
			b.Order.IssueDate.Format("02-01-2006"),
			types.FormatQty(b.Total),
			types.FormatQty(b.InwardLifting),
			types.FormatQty(b.SalesLifting),
			types.FormatQty(b.Lifting),
			types.FormatQty(b.Balance),
			b.Status(),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return err
			}
		}
	}

	_, err := f.WriteTo(w)
	return err
}
