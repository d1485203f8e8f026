package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary = "Ringkasan Keuangan"
	sheetArrears = "Anggota Belum Lunas"
)

// ExportFileName names the downloaded workbook after today's date.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("Laporan-Karangtaruna-%s.xlsx", now.Format("02-01-2006"))
}

// ExcelReport renders the report as a styled two-sheet workbook
// mirroring the layout the treasurer hands out: a financial summary and
// the arrears list.
func ExcelReport(r Report, now time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetSummary)
	if _, err := f.NewSheet(sheetArrears); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}

	if err := writeSummarySheet(f, r, now); err != nil {
		return nil, err
	}
	if err := writeArrearsSheet(f, r); err != nil {
		return nil, err
	}
	return f, nil
}

func writeSummarySheet(f *excelize.File, r Report, now time.Time) error {
	rows := [][]interface{}{
		{"LAPORAN KEUANGAN KARANG TARUNA", ""},
		{"Tanggal Laporan:", now.Format("02/01/2006")},
		{"Periode:", r.Period},
		{"", ""},
		{"RINGKASAN KEUANGAN", ""},
		{"Saldo Cash", r.BalanceCash},
		{"Saldo M-Banking", r.BalanceBank},
		{"Total Saldo", r.TotalBalance},
		{"", ""},
		{"PEMASUKAN", ""},
		{"Iuran Anggota", r.DuesIncome},
		{"Kas Pertemuan", r.MeetingCash},
		{"Total Pemasukan", r.TotalIncome},
		{"", ""},
		{"PENGELUARAN", ""},
		{"Total Pengeluaran", r.TotalExpense},
		{"", ""},
		{"SALDO AKHIR", r.TotalBalance},
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheetSummary, cell, &row); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}

	f.SetColWidth(sheetSummary, "A", "A", 28)
	f.SetColWidth(sheetSummary, "B", "B", 22)
	f.MergeCell(sheetSummary, "A1", "B1")

	title, err := titleStyle(f)
	if err != nil {
		return err
	}
	f.SetCellStyle(sheetSummary, "A1", "B1", title)

	section, err := sectionStyle(f)
	if err != nil {
		return err
	}
	for _, row := range []int{5, 10, 15, 18} {
		f.SetCellStyle(sheetSummary, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), section)
	}

	amount, err := amountStyle(f)
	if err != nil {
		return err
	}
	f.SetCellStyle(sheetSummary, "B2", fmt.Sprintf("B%d", len(rows)), amount)
	return nil
}

func writeArrearsSheet(f *excelize.File, r Report) error {
	rows := [][]interface{}{
		{"DAFTAR ANGGOTA DENGAN PEMBAYARAN BELUM LUNAS", "", "", "", "", ""},
		{"", "", "", "", "", ""},
		{"Nama Anggota", "Total Bulan", "Sudah Bayar", "Belum Bayar", "Tunggakan (Rp)", "Bulan yang Belum Dibayar"},
	}
	for _, m := range r.Incomplete {
		rows = append(rows, []interface{}{
			m.Member.Name,
			m.TotalMonths,
			m.PaidMonths,
			m.UnpaidMonths,
			m.Arrears,
			strings.Join(m.MissingPayments, ", "),
		})
	}
	rows = append(rows,
		[]interface{}{"", "", "", "", "", ""},
		[]interface{}{"TOTAL TUNGGAKAN", "", "", "", r.TotalArrears, ""},
	)
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheetArrears, cell, &row); err != nil {
			return fmt.Errorf("write arrears row: %w", err)
		}
	}

	widths := []struct {
		col string
		w   float64
	}{{"A", 28}, {"B", 15}, {"C", 15}, {"D", 15}, {"E", 22}, {"F", 50}}
	for _, cw := range widths {
		f.SetColWidth(sheetArrears, cw.col, cw.col, cw.w)
	}
	f.MergeCell(sheetArrears, "A1", "F1")

	title, err := titleStyle(f)
	if err != nil {
		return err
	}
	f.SetCellStyle(sheetArrears, "A1", "F1", title)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}
	f.SetCellStyle(sheetArrears, "A3", "F3", header)

	amount, err := amountStyle(f)
	if err != nil {
		return err
	}
	last := len(rows)
	f.SetCellStyle(sheetArrears, "E4", fmt.Sprintf("E%d", last), amount)

	total, err := totalStyle(f)
	if err != nil {
		return err
	}
	f.SetCellStyle(sheetArrears, fmt.Sprintf("A%d", last), fmt.Sprintf("F%d", last), total)
	return nil
}

func thinBorders() []excelize.Border {
	sides := []string{"top", "bottom", "left", "right"}
	borders := make([]excelize.Border, 0, len(sides))
	for _, s := range sides {
		borders = append(borders, excelize.Border{Type: s, Color: "000000", Style: 1})
	}
	return borders
}

func titleStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Border:    thinBorders(),
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
}

func sectionStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Border: thinBorders(),
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E7E6E6"}},
	})
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Border:    thinBorders(),
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
}

func totalStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Border: thinBorders(),
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFF2CC"}},
	})
}

func amountStyle(f *excelize.File) (int, error) {
	numFmt := "#,##0"
	return f.NewStyle(&excelize.Style{
		Border:       thinBorders(),
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		CustomNumFmt: &numFmt,
	})
}
