package service

import (
	"context"
	"fmt"

	"kas-taruna/internal/ledger"
	"kas-taruna/internal/model"

	"gorm.io/gorm"
)

// MemberArrears is one member with dues outstanding over the report
// period.
type MemberArrears struct {
	Member          model.Member `json:"member"`
	TotalMonths     int          `json:"total_months"`
	PaidMonths      int          `json:"paid_months"`
	UnpaidMonths    int          `json:"unpaid_months"`
	Arrears         int64        `json:"arrears"`
	MissingPayments []string     `json:"missing_payments"`
}

// Report is the aggregate view the reports page and the Excel export
// share.
type Report struct {
	Period       string          `json:"period"`
	BalanceCash  int64           `json:"balance_cash"`
	BalanceBank  int64           `json:"balance_bank"`
	TotalBalance int64           `json:"total_balance"`
	DuesIncome   int64           `json:"dues_income"`
	MeetingCash  int64           `json:"meeting_cash"`
	TotalIncome  int64           `json:"total_income"`
	TotalExpense int64           `json:"total_expense"`
	TotalArrears int64           `json:"total_arrears"`
	Incomplete   []MemberArrears `json:"incomplete"`
}

// BuildReport folds already-fetched rows into the report aggregates.
// Pure so the arithmetic is testable without a database.
func BuildReport(
	bal ledger.Balance,
	months []ledger.MonthYear,
	members []model.Member,
	payments []model.MonthlyPayment,
	transactions []model.Transaction,
	meetings []model.Meeting,
) Report {
	r := Report{
		BalanceCash:  bal.Cash,
		BalanceBank:  bal.Bank,
		TotalBalance: bal.Total(),
	}
	if len(months) > 0 {
		r.Period = fmt.Sprintf("%s - %s", months[0].Label(), months[len(months)-1].Label())
	}

	inRange := make(map[string]bool, len(months))
	for _, m := range months {
		inRange[m.Key()] = true
	}

	paidByMember := make(map[string]map[string]bool, len(members))
	for _, p := range payments {
		if !p.Paid {
			continue
		}
		key := ledger.MonthYear{Month: p.Month, Year: p.Year}.Key()
		if !inRange[key] {
			continue
		}
		if paidByMember[p.MemberID] == nil {
			paidByMember[p.MemberID] = map[string]bool{}
		}
		paidByMember[p.MemberID][key] = true
		r.DuesIncome += p.Amount
	}

	for _, m := range members {
		sum := ledger.Summarize(months, paidByMember[m.ID])
		if sum.UnpaidMonths == 0 {
			continue
		}
		arrears := int64(sum.UnpaidMonths) * ledger.UnitPrice
		r.TotalArrears += arrears
		r.Incomplete = append(r.Incomplete, MemberArrears{
			Member:          m,
			TotalMonths:     sum.TotalMonths,
			PaidMonths:      sum.PaidMonths,
			UnpaidMonths:    sum.UnpaidMonths,
			Arrears:         arrears,
			MissingPayments: sum.Missing,
		})
	}

	for _, t := range transactions {
		if t.Type == ledger.TypeExpense {
			r.TotalExpense += t.Amount
		}
	}
	for _, m := range meetings {
		r.MeetingCash += m.TotalCashCollected
	}
	r.TotalIncome = r.DuesIncome + r.MeetingCash
	return r
}

type ReportService struct {
	db       *gorm.DB
	org      *OrgService
	members  *MemberService
	payments *PaymentService
}

func NewReportService(db *gorm.DB, org *OrgService, members *MemberService, payments *PaymentService) *ReportService {
	return &ReportService{db: db, org: org, members: members, payments: payments}
}

func (s *ReportService) Build(ctx context.Context, start, end ledger.MonthYear) (Report, error) {
	bal, err := s.org.Balance(ctx)
	if err != nil {
		return Report{}, err
	}
	members, err := s.members.ListActive(ctx)
	if err != nil {
		return Report{}, err
	}
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	payments, err := s.payments.ListByMembers(ctx, ids)
	if err != nil {
		return Report{}, err
	}

	var transactions []model.Transaction
	if err := s.db.WithContext(ctx).Find(&transactions).Error; err != nil {
		return Report{}, fmt.Errorf("query transactions: %w", err)
	}
	var meetings []model.Meeting
	if err := s.db.WithContext(ctx).Find(&meetings).Error; err != nil {
		return Report{}, fmt.Errorf("query meetings: %w", err)
	}

	months := ledger.MonthsInRange(start, end)
	return BuildReport(bal, months, members, payments, transactions, meetings), nil
}
