package ledger

import (
	"reflect"
	"testing"
)

func TestMonthsInRange(t *testing.T) {
	tests := []struct {
		name  string
		start MonthYear
		end   MonthYear
		want  []MonthYear
	}{
		{
			name:  "single month",
			start: MonthYear{Month: 7, Year: 2025},
			end:   MonthYear{Month: 7, Year: 2025},
			want:  []MonthYear{{Month: 7, Year: 2025}},
		},
		{
			name:  "crosses year boundary",
			start: MonthYear{Month: 11, Year: 2025},
			end:   MonthYear{Month: 2, Year: 2026},
			want: []MonthYear{
				{Month: 11, Year: 2025},
				{Month: 12, Year: 2025},
				{Month: 1, Year: 2026},
				{Month: 2, Year: 2026},
			},
		},
		{
			name:  "start after end is empty",
			start: MonthYear{Month: 5, Year: 2026},
			end:   MonthYear{Month: 1, Year: 2026},
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthsInRange(tt.start, tt.end)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MonthsInRange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonthYearLabel(t *testing.T) {
	if got := (MonthYear{Month: 7, Year: 2025}).Label(); got != "Juli 2025" {
		t.Errorf("Label() = %q, want %q", got, "Juli 2025")
	}
	if got := (MonthYear{Month: 12, Year: 2026}).Label(); got != "Desember 2026" {
		t.Errorf("Label() = %q, want %q", got, "Desember 2026")
	}
}

func TestSummarize(t *testing.T) {
	months := MonthsInRange(MonthYear{Month: 7, Year: 2025}, MonthYear{Month: 11, Year: 2025})

	paid := map[string]bool{
		"7-2025": true,
		"9-2025": true,
	}
	s := Summarize(months, paid)

	if s.TotalMonths != 5 || s.PaidMonths != 2 || s.UnpaidMonths != 3 {
		t.Errorf("counts = %d/%d/%d, want 5/2/3", s.TotalMonths, s.PaidMonths, s.UnpaidMonths)
	}
	if s.PaidTotal != 2*UnitPrice {
		t.Errorf("PaidTotal = %d, want %d", s.PaidTotal, 2*UnitPrice)
	}
	wantMissing := []string{"Agustus 2025", "Oktober 2025", "November 2025"}
	if !reflect.DeepEqual(s.Missing, wantMissing) {
		t.Errorf("Missing = %v, want %v", s.Missing, wantMissing)
	}
}

func TestSummarizeAllPaid(t *testing.T) {
	months := MonthsInRange(MonthYear{Month: 1, Year: 2026}, MonthYear{Month: 3, Year: 2026})
	paid := map[string]bool{"1-2026": true, "2-2026": true, "3-2026": true}

	s := Summarize(months, paid)
	if s.UnpaidMonths != 0 || len(s.Missing) != 0 {
		t.Errorf("expected nothing missing, got %+v", s)
	}
	if s.PaidTotal != 3*UnitPrice {
		t.Errorf("PaidTotal = %d, want %d", s.PaidTotal, 3*UnitPrice)
	}
}
