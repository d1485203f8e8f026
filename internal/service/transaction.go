package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kas-taruna/internal/ledger"
	"kas-taruna/internal/model"

	"gorm.io/gorm"
)

// TransactionService records ad-hoc income/expense entries with the
// same two-step, no-rollback write pattern as PaymentService.
type TransactionService struct {
	db  *gorm.DB
	org *OrgService
}

func NewTransactionService(db *gorm.DB, org *OrgService) *TransactionService {
	return &TransactionService{db: db, org: org}
}

func (s *TransactionService) List(ctx context.Context) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := s.db.WithContext(ctx).
		Order("date DESC").
		Order("created_at DESC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	return txs, nil
}

func (s *TransactionService) Add(ctx context.Context, role, createdBy string, req model.AddTransactionRequest) (*model.Transaction, error) {
	if role != model.RoleBendahara {
		return nil, ErrForbidden
	}
	if !ledger.ValidType(req.Type) {
		return nil, invalid("jenis transaksi harus income atau expense")
	}
	if !ledger.ValidMethod(req.Method) {
		return nil, invalid("metode pembayaran harus cash atau transfer")
	}
	if req.Amount <= 0 {
		return nil, invalid("jumlah harus bilangan bulat positif")
	}
	if req.Description == "" {
		return nil, invalid("deskripsi wajib diisi")
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}

	tx := model.Transaction{
		Date:          req.Date,
		Type:          req.Type,
		Amount:        req.Amount,
		Description:   req.Description,
		PaymentMethod: req.Method,
		CreatedBy:     createdBy,
	}
	if err := s.db.WithContext(ctx).Create(&tx).Error; err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	bal, err := s.org.Balance(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.org.SetBalance(ctx, ledger.ApplyTransaction(bal, tx.Type, tx.PaymentMethod, tx.Amount)); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (s *TransactionService) Delete(ctx context.Context, role, id string) error {
	if role != model.RoleBendahara {
		return ErrForbidden
	}

	var tx model.Transaction
	if err := s.db.WithContext(ctx).First(&tx, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("fetch transaction: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(&model.Transaction{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	if !ledger.ValidMethod(tx.PaymentMethod) {
		// Legacy rows without a method carry no balance effect to undo.
		return nil
	}
	bal, err := s.org.Balance(ctx)
	if err != nil {
		return err
	}
	return s.org.SetBalance(ctx, ledger.ReverseTransaction(bal, tx.Type, tx.PaymentMethod, tx.Amount))
}
