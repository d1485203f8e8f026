package ledger

import "testing"

func TestPayUnpayNetsToZero(t *testing.T) {
	tests := []struct {
		name   string
		start  Balance
		method string
		rounds int
	}{
		{name: "cash single round", start: Balance{Cash: 20000, Bank: 5000}, method: MethodCash, rounds: 1},
		{name: "transfer single round", start: Balance{Cash: 0, Bank: 15000}, method: MethodTransfer, rounds: 1},
		{name: "cash repeated rounds", start: Balance{Cash: 100000}, method: MethodCash, rounds: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.start
			for i := 0; i < tt.rounds; i++ {
				b = ApplyPayment(b, tt.method, UnitPrice)
				b = ReversePayment(b, tt.method, UnitPrice)
			}
			if b != tt.start {
				t.Errorf("after %d pay/unpay rounds got %+v, want %+v", tt.rounds, b, tt.start)
			}
		})
	}
}

func TestReversePaymentClampsAtZero(t *testing.T) {
	b := Balance{Cash: 3000, Bank: 2000}

	b = ReversePayment(b, MethodCash, UnitPrice)
	if b.Cash != 0 {
		t.Errorf("cash = %d, want 0 (clamped)", b.Cash)
	}
	b = ReversePayment(b, MethodTransfer, UnitPrice)
	if b.Bank != 0 {
		t.Errorf("bank = %d, want 0 (clamped)", b.Bank)
	}
	// Reversing again must stay at the floor.
	b = ReversePayment(b, MethodCash, UnitPrice)
	if b.Cash != 0 {
		t.Errorf("cash after second reversal = %d, want 0", b.Cash)
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		start  Balance
		typ    string
		method string
		amount int64
	}{
		{name: "income cash", start: Balance{Cash: 10000}, typ: TypeIncome, method: MethodCash, amount: 2500},
		{name: "income transfer", start: Balance{Bank: 40000}, typ: TypeIncome, method: MethodTransfer, amount: 100000},
		{name: "expense cash", start: Balance{Cash: 50000}, typ: TypeExpense, method: MethodCash, amount: 12000},
		{name: "expense transfer larger than balance", start: Balance{Bank: 1000}, typ: TypeExpense, method: MethodTransfer, amount: 99000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ApplyTransaction(tt.start, tt.typ, tt.method, tt.amount)
			b = ReverseTransaction(b, tt.typ, tt.method, tt.amount)
			if b != tt.start {
				t.Errorf("round trip got %+v, want %+v", b, tt.start)
			}
		})
	}
}

func TestExpenseIsNeverClamped(t *testing.T) {
	b := Balance{Cash: 4000, Bank: 1000}

	b = ApplyTransaction(b, TypeExpense, MethodCash, 10000)
	if b.Cash != -6000 {
		t.Errorf("cash = %d, want -6000 (expense may go negative)", b.Cash)
	}
	b = ApplyTransaction(b, TypeExpense, MethodTransfer, 2500)
	if b.Bank != -1500 {
		t.Errorf("bank = %d, want -1500", b.Bank)
	}
}

func TestIncomeReversalClampsButExpenseReversalDoesNot(t *testing.T) {
	// Income reversal behaves like payment reversal: floor at zero.
	b := ReverseTransaction(Balance{Cash: 1000}, TypeIncome, MethodCash, 5000)
	if b.Cash != 0 {
		t.Errorf("income reversal cash = %d, want 0", b.Cash)
	}

	// Expense reversal adds back unconditionally, even from negative.
	b = ReverseTransaction(Balance{Cash: -6000}, TypeExpense, MethodCash, 10000)
	if b.Cash != 4000 {
		t.Errorf("expense reversal cash = %d, want 4000", b.Cash)
	}
}

func TestUnknownMethodLeavesBalanceUntouched(t *testing.T) {
	start := Balance{Cash: 7000, Bank: 8000}
	if b := ApplyPayment(start, "", UnitPrice); b != start {
		t.Errorf("ApplyPayment with empty method changed balance: %+v", b)
	}
	if b := ReversePayment(start, "qris", UnitPrice); b != start {
		t.Errorf("ReversePayment with unknown method changed balance: %+v", b)
	}
}
