package service

import (
	"testing"
	"time"

	"kas-taruna/internal/ledger"
	"kas-taruna/internal/model"

	"github.com/xuri/excelize/v2"
)

func TestExcelReportLayout(t *testing.T) {
	r := Report{
		Period:       "Juli 2025 - November 2025",
		BalanceCash:  40000,
		BalanceBank:  25000,
		TotalBalance: 65000,
		DuesIncome:   20000,
		MeetingCash:  45000,
		TotalIncome:  65000,
		TotalExpense: 10000,
		TotalArrears: 10000,
		Incomplete: []MemberArrears{
			{
				Member:          model.Member{ID: "m2", Name: "BUDI"},
				TotalMonths:     5,
				PaidMonths:      3,
				UnpaidMonths:    2,
				Arrears:         2 * ledger.UnitPrice,
				MissingPayments: []string{"Oktober 2025", "November 2025"},
			},
		},
	}

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	f, err := ExcelReport(r, now)
	if err != nil {
		t.Fatalf("ExcelReport() error = %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Ringkasan Keuangan" || sheets[1] != "Anggota Belum Lunas" {
		t.Fatalf("sheets = %v", sheets)
	}

	checks := []struct {
		sheet, cell, want string
	}{
		{"Ringkasan Keuangan", "A1", "LAPORAN KEUANGAN KARANG TARUNA"},
		{"Ringkasan Keuangan", "B3", "Juli 2025 - November 2025"},
		{"Ringkasan Keuangan", "A6", "Saldo Cash"},
		{"Ringkasan Keuangan", "B6", "40000"},
		{"Ringkasan Keuangan", "B8", "65000"},
		{"Ringkasan Keuangan", "A18", "SALDO AKHIR"},
		{"Anggota Belum Lunas", "A3", "Nama Anggota"},
		{"Anggota Belum Lunas", "A4", "BUDI"},
		{"Anggota Belum Lunas", "E4", "10000"},
		{"Anggota Belum Lunas", "F4", "Oktober 2025, November 2025"},
		{"Anggota Belum Lunas", "A6", "TOTAL TUNGGAKAN"},
		{"Anggota Belum Lunas", "E6", "10000"},
	}
	for _, c := range checks {
		got, err := f.GetCellValue(c.sheet, c.cell, excelize.Options{RawCellValue: true})
		if err != nil {
			t.Fatalf("GetCellValue(%s!%s) error = %v", c.sheet, c.cell, err)
		}
		if got != c.want {
			t.Errorf("%s!%s = %q, want %q", c.sheet, c.cell, got, c.want)
		}
	}
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if got := ExportFileName(now); got != "Laporan-Karangtaruna-30-08-2026.xlsx" {
		t.Errorf("ExportFileName() = %q", got)
	}
}
