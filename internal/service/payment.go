package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kas-taruna/internal/ledger"
	"kas-taruna/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentService records and reverses monthly dues. Each mutation is a
// two-step sequence: write the payment row, then write the Organization
// balance. The two calls are intentionally not wrapped in a transaction;
// when the second step fails the rows are left as they are and the
// error is surfaced so the client can refetch.
type PaymentService struct {
	db  *gorm.DB
	org *OrgService
}

func NewPaymentService(db *gorm.DB, org *OrgService) *PaymentService {
	return &PaymentService{db: db, org: org}
}

// PaymentRecord is the per-cell state of the dues grid.
type PaymentRecord struct {
	Paid   bool   `json:"paid"`
	Method string `json:"method,omitempty"`
}

func (s *PaymentService) Pay(ctx context.Context, role, memberID string, month, year int, method string) (*model.MonthlyPayment, error) {
	if role != model.RoleBendahara {
		return nil, ErrForbidden
	}
	if !ledger.ValidMethod(method) {
		return nil, invalid("metode pembayaran harus cash atau transfer")
	}
	if month < 1 || month > 12 {
		return nil, invalid("bulan tidak valid")
	}

	p := model.MonthlyPayment{
		MemberID:      memberID,
		Month:         month,
		Year:          year,
		Amount:        ledger.UnitPrice,
		Paid:          true,
		PaidAt:        time.Now(),
		PaymentMethod: method,
	}
	// Upsert: re-marking an already-settled month overwrites the row
	// instead of failing the unique (member, month, year) index.
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&p).Error; err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	bal, err := s.org.Balance(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.org.SetBalance(ctx, ledger.ApplyPayment(bal, method, p.Amount)); err != nil {
		return nil, err
	}
	return &p, nil
}

// Unpay deletes the payment row for (member, month, year) and decrements
// the matching balance, clamped at zero. The stored row is read first to
// recover its method and amount; when it is already gone the reversal
// falls back to the client's cached values, amount defaulting to the
// unit price.
func (s *PaymentService) Unpay(ctx context.Context, role string, req model.UnpayRequest) error {
	if role != model.RoleBendahara {
		return ErrForbidden
	}

	method := req.CachedMethod
	amount := req.CachedAmount
	if amount <= 0 {
		amount = ledger.UnitPrice
	}

	var existing model.MonthlyPayment
	err := s.db.WithContext(ctx).
		Where("member_id = ? AND month = ? AND year = ?", req.MemberID, req.Month, req.Year).
		First(&existing).Error
	switch {
	case err == nil:
		method = existing.PaymentMethod
		amount = existing.Amount
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Row already gone; reverse using the cached values.
	default:
		return fmt.Errorf("fetch payment: %w", err)
	}

	err = s.db.WithContext(ctx).
		Where("member_id = ? AND month = ? AND year = ?", req.MemberID, req.Month, req.Year).
		Delete(&model.MonthlyPayment{}).Error
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}

	bal, err := s.org.Balance(ctx)
	if err != nil {
		return err
	}
	return s.org.SetBalance(ctx, ledger.ReversePayment(bal, method, amount))
}

// Grid builds the member × month payment map the dashboard renders.
func (s *PaymentService) Grid(ctx context.Context, members []model.Member, months []ledger.MonthYear) (map[string]map[string]PaymentRecord, error) {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}

	var payments []model.MonthlyPayment
	if len(ids) > 0 {
		if err := s.db.WithContext(ctx).Where("member_id IN ?", ids).Find(&payments).Error; err != nil {
			return nil, fmt.Errorf("query payments: %w", err)
		}
	}

	byMember := make(map[string]map[string]model.MonthlyPayment, len(members))
	for _, p := range payments {
		key := ledger.MonthYear{Month: p.Month, Year: p.Year}.Key()
		if byMember[p.MemberID] == nil {
			byMember[p.MemberID] = map[string]model.MonthlyPayment{}
		}
		byMember[p.MemberID][key] = p
	}

	grid := make(map[string]map[string]PaymentRecord, len(members))
	for _, m := range members {
		row := make(map[string]PaymentRecord, len(months))
		for _, my := range months {
			if p, ok := byMember[m.ID][my.Key()]; ok && p.Paid {
				row[my.Key()] = PaymentRecord{Paid: true, Method: p.PaymentMethod}
			} else {
				row[my.Key()] = PaymentRecord{}
			}
		}
		grid[m.ID] = row
	}
	return grid, nil
}

// ListByMembers returns every stored payment for the given member ids.
func (s *PaymentService) ListByMembers(ctx context.Context, ids []string) ([]model.MonthlyPayment, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var payments []model.MonthlyPayment
	if err := s.db.WithContext(ctx).Where("member_id IN ?", ids).Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	return payments, nil
}
