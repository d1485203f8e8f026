package service

import (
	"context"
	"errors"
	"testing"

	"kas-taruna/internal/ledger"
	"kas-taruna/internal/model"
)

// The role check runs before any store access, so a member-role caller
// must get ErrForbidden from every mutating operation without touching
// the database.
func TestMutationsRequireBendahara(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"pay", func() error {
			_, err := (&PaymentService{}).Pay(ctx, model.RoleMember, "m1", 7, 2025, ledger.MethodCash)
			return err
		}},
		{"unpay", func() error {
			return (&PaymentService{}).Unpay(ctx, model.RoleMember, model.UnpayRequest{MemberID: "m1", Month: 7, Year: 2025})
		}},
		{"add transaction", func() error {
			_, err := (&TransactionService{}).Add(ctx, model.RoleMember, "u1", model.AddTransactionRequest{
				Type: ledger.TypeIncome, Amount: 1000, Description: "donasi", Method: ledger.MethodCash,
			})
			return err
		}},
		{"delete transaction", func() error {
			return (&TransactionService{}).Delete(ctx, model.RoleMember, "t1")
		}},
		{"add member", func() error {
			_, err := (&MemberService{}).Add(ctx, model.RoleMember, "CITRA")
			return err
		}},
		{"delete member", func() error {
			return (&MemberService{}).Delete(ctx, model.RoleMember, "m1")
		}},
		{"add meeting", func() error {
			_, err := (&MeetingService{}).Add(ctx, model.RoleMember, model.AddMeetingRequest{Date: "2026-09-01", Topic: "Kumpulan"})
			return err
		}},
		{"delete meeting", func() error {
			return (&MeetingService{}).Delete(ctx, model.RoleMember, "mt1")
		}},
		{"commit spin", func() error {
			_, err := (&MeetingService{}).CommitSpin(ctx, model.RoleMember, "m1")
			return err
		}},
		{"override cash", func() error {
			return (&OrgService{}).OverrideCash(ctx, model.RoleMember, 10000)
		}},
		{"override bank", func() error {
			return (&OrgService{}).OverrideBank(ctx, model.RoleMember, 10000)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, ErrForbidden) {
				t.Errorf("error = %v, want ErrForbidden", err)
			}
		})
	}
}

func TestValidationRunsAfterRoleCheck(t *testing.T) {
	ctx := context.Background()

	// A bendahara with bad input gets a validation error, not a store
	// call. These all fail before touching the database.
	var verr *ValidationError

	_, err := (&PaymentService{}).Pay(ctx, model.RoleBendahara, "m1", 7, 2025, "qris")
	if !errors.As(err, &verr) {
		t.Errorf("Pay with unknown method: error = %v, want ValidationError", err)
	}

	_, err = (&TransactionService{}).Add(ctx, model.RoleBendahara, "u1", model.AddTransactionRequest{
		Type: ledger.TypeIncome, Amount: 0, Description: "x", Method: ledger.MethodCash,
	})
	if !errors.As(err, &verr) {
		t.Errorf("Add with zero amount: error = %v, want ValidationError", err)
	}

	_, err = (&TransactionService{}).Add(ctx, model.RoleBendahara, "u1", model.AddTransactionRequest{
		Type: ledger.TypeIncome, Amount: 500, Description: "", Method: ledger.MethodCash,
	})
	if !errors.As(err, &verr) {
		t.Errorf("Add with empty description: error = %v, want ValidationError", err)
	}

	_, err = (&MemberService{}).Add(ctx, model.RoleBendahara, "   ")
	if !errors.As(err, &verr) {
		t.Errorf("Add member with blank name: error = %v, want ValidationError", err)
	}

	if err := (&OrgService{}).OverrideCash(ctx, model.RoleBendahara, -1); !errors.As(err, &verr) {
		t.Errorf("OverrideCash negative: error = %v, want ValidationError", err)
	}
}
