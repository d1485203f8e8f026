package service

import (
	"context"
	"fmt"

	"kas-taruna/internal/ledger"
	"kas-taruna/internal/model"

	"gorm.io/gorm"
)

// OrgService reads and writes the single Organization row holding the
// group's running totals. The row is addressed by its fixed id, never
// re-derived from the member roster.
type OrgService struct{ db *gorm.DB }

func NewOrgService(db *gorm.DB) *OrgService { return &OrgService{db: db} }

// Seed creates the singleton row with zero balances if it is missing.
func (s *OrgService) Seed(ctx context.Context) error {
	org := model.Organization{ID: model.OrganizationID}
	if err := s.db.WithContext(ctx).FirstOrCreate(&org).Error; err != nil {
		return fmt.Errorf("seed organization: %w", err)
	}
	return nil
}

func (s *OrgService) Balance(ctx context.Context) (ledger.Balance, error) {
	var org model.Organization
	if err := s.db.WithContext(ctx).First(&org, "id = ?", model.OrganizationID).Error; err != nil {
		return ledger.Balance{}, fmt.Errorf("fetch organization: %w", err)
	}
	return ledger.Balance{Cash: org.BalanceCash, Bank: org.BalanceBank}, nil
}

func (s *OrgService) SetBalance(ctx context.Context, b ledger.Balance) error {
	err := s.db.WithContext(ctx).Model(&model.Organization{}).
		Where("id = ?", model.OrganizationID).
		Updates(map[string]interface{}{
			"balance_cash": b.Cash,
			"balance_bank": b.Bank,
		}).Error
	if err != nil {
		return fmt.Errorf("update organization balance: %w", err)
	}
	return nil
}

// OverrideCash overwrites the cash total with an arbitrary non-negative
// value. Used by the bendahara to correct drift; no audit trail.
func (s *OrgService) OverrideCash(ctx context.Context, role string, value int64) error {
	if role != model.RoleBendahara {
		return ErrForbidden
	}
	if value < 0 {
		return invalid("saldo tidak boleh negatif")
	}
	err := s.db.WithContext(ctx).Model(&model.Organization{}).
		Where("id = ?", model.OrganizationID).
		Update("balance_cash", value).Error
	if err != nil {
		return fmt.Errorf("override cash balance: %w", err)
	}
	return nil
}

func (s *OrgService) OverrideBank(ctx context.Context, role string, value int64) error {
	if role != model.RoleBendahara {
		return ErrForbidden
	}
	if value < 0 {
		return invalid("saldo tidak boleh negatif")
	}
	err := s.db.WithContext(ctx).Model(&model.Organization{}).
		Where("id = ?", model.OrganizationID).
		Update("balance_bank", value).Error
	if err != nil {
		return fmt.Errorf("override bank balance: %w", err)
	}
	return nil
}
