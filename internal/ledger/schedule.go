package ledger

import "fmt"

// MonthYear identifies one dues period.
type MonthYear struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

var monthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Key matches the "month-year" map key the clients use.
func (m MonthYear) Key() string { return fmt.Sprintf("%d-%d", m.Month, m.Year) }

func (m MonthYear) Label() string {
	if m.Month < 1 || m.Month > 12 {
		return m.Key()
	}
	return fmt.Sprintf("%s %d", monthNames[m.Month-1], m.Year)
}

func (m MonthYear) ordinal() int { return m.Year*12 + m.Month - 1 }

// MonthsInRange walks from start to end inclusive. Empty when start is
// after end.
func MonthsInRange(start, end MonthYear) []MonthYear {
	var months []MonthYear
	for cur := start; cur.ordinal() <= end.ordinal(); {
		months = append(months, cur)
		cur.Month++
		if cur.Month > 12 {
			cur.Month = 1
			cur.Year++
		}
	}
	return months
}

// DuesSummary is one member's settlement state over a period.
type DuesSummary struct {
	TotalMonths  int
	PaidMonths   int
	UnpaidMonths int
	PaidTotal    int64
	Missing      []string // labels of unpaid months, in range order
}

// Summarize computes dues totals over the given months. paid holds the
// Key() of every settled month. PaidTotal is UnitPrice per paid month;
// Missing is the complement of the paid set, in range order.
func Summarize(months []MonthYear, paid map[string]bool) DuesSummary {
	s := DuesSummary{TotalMonths: len(months)}
	for _, m := range months {
		if paid[m.Key()] {
			s.PaidMonths++
			continue
		}
		s.Missing = append(s.Missing, m.Label())
	}
	s.UnpaidMonths = s.TotalMonths - s.PaidMonths
	s.PaidTotal = UnitPrice * int64(s.PaidMonths)
	return s
}
