// Package ledger holds the arithmetic that keeps the organization's two
// running totals consistent with dues payments and ad-hoc transactions.
// Everything here is pure; persistence lives in the service layer.
package ledger

// UnitPrice is the fixed dues amount per member per month, in the
// smallest currency unit.
const UnitPrice int64 = 5000

const (
	MethodCash     = "cash"
	MethodTransfer = "transfer"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

func ValidMethod(m string) bool { return m == MethodCash || m == MethodTransfer }

func ValidType(t string) bool { return t == TypeIncome || t == TypeExpense }

// Balance is the organization's money on hand, split by where it sits.
type Balance struct {
	Cash int64
	Bank int64
}

func (b Balance) Total() int64 { return b.Cash + b.Bank }

// ApplyPayment credits a dues payment to the field matching its method.
func ApplyPayment(b Balance, method string, amount int64) Balance {
	switch method {
	case MethodCash:
		b.Cash += amount
	case MethodTransfer:
		b.Bank += amount
	}
	return b
}

// ReversePayment undoes a dues payment. The affected field is clamped
// at zero: a reversal must never drive a balance negative.
func ReversePayment(b Balance, method string, amount int64) Balance {
	switch method {
	case MethodCash:
		b.Cash = clampZero(b.Cash - amount)
	case MethodTransfer:
		b.Bank = clampZero(b.Bank - amount)
	}
	return b
}

// ApplyTransaction credits an income or debits an expense. Expenses are
// NOT clamped: an expense may drive a balance negative. The asymmetry
// with ReversePayment is deliberate and matches the recorded bookkeeping
// practice; do not "fix" it here.
func ApplyTransaction(b Balance, typ, method string, amount int64) Balance {
	delta := amount
	if typ == TypeExpense {
		delta = -amount
	}
	switch method {
	case MethodCash:
		b.Cash += delta
	case MethodTransfer:
		b.Bank += delta
	}
	return b
}

// ReverseTransaction applies the exact inverse of ApplyTransaction:
// a deleted income is subtracted back out (clamped at zero), a deleted
// expense is added back (unclamped).
func ReverseTransaction(b Balance, typ, method string, amount int64) Balance {
	if typ == TypeIncome {
		switch method {
		case MethodCash:
			b.Cash = clampZero(b.Cash - amount)
		case MethodTransfer:
			b.Bank = clampZero(b.Bank - amount)
		}
		return b
	}
	switch method {
	case MethodCash:
		b.Cash += amount
	case MethodTransfer:
		b.Bank += amount
	}
	return b
}

func clampZero(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
