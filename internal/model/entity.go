package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleBendahara = "bendahara"
	RoleMember    = "member"
)

// Profile is a login account. Role decides whether mutating endpoints
// are allowed (bendahara) or the account is view-only (member).
type Profile struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:64" json:"username"`
	Password  string    `json:"-"`
	FullName  string    `json:"full_name"`
	Role      string    `gorm:"default:member;size:16" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Member is a roster entry. Balances do not live here: the running
// totals belong to the single Organization row.
type Member struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// OrganizationID is the fixed primary key of the singleton row.
const OrganizationID = "org"

// Organization holds the two running totals for the whole group.
// Exactly one row exists, seeded at startup.
type Organization struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	BalanceCash int64  `json:"balance_cash"`
	BalanceBank int64  `json:"balance_bank"`
}

// MonthlyPayment marks one member's dues for one calendar month as
// settled. Rows are hard-deleted when a payment is reversed.
type MonthlyPayment struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	MemberID      string    `gorm:"size:36;uniqueIndex:uk_member_month,priority:1" json:"member_id"`
	Month         int       `gorm:"uniqueIndex:uk_member_month,priority:2" json:"month"`
	Year          int       `gorm:"uniqueIndex:uk_member_month,priority:3" json:"year"`
	Amount        int64     `json:"amount"`
	Paid          bool      `json:"paid"`
	PaidAt        time.Time `json:"paid_at"`
	PaymentMethod string    `gorm:"size:16" json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

// Transaction is an ad-hoc ledger entry outside the dues cycle.
type Transaction struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Date          string    `gorm:"type:date" json:"date"`
	Type          string    `gorm:"size:16" json:"type"`
	Amount        int64     `json:"amount"`
	Description   string    `json:"description"`
	PaymentMethod string    `gorm:"size:16" json:"payment_method"`
	CreatedBy     string    `gorm:"size:36" json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// Meeting is a calendar event. TotalCashCollected feeds report totals
// only and is never folded into the Organization balances.
type Meeting struct {
	ID                 string    `gorm:"primaryKey;size:36" json:"id"`
	Date               string    `gorm:"type:date" json:"date"`
	Topic              string    `json:"topic"`
	Location           string    `json:"location"`
	TotalCashCollected int64     `json:"total_cash_collected"`
	Notes              string    `json:"notes"`
	CreatedAt          time.Time `json:"created_at"`
}

func (Profile) TableName() string        { return "profiles" }
func (Member) TableName() string         { return "members" }
func (Organization) TableName() string   { return "organization" }
func (MonthlyPayment) TableName() string { return "monthly_payments" }
func (Transaction) TableName() string    { return "transactions" }
func (Meeting) TableName() string        { return "meetings" }

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (p *MonthlyPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

func (m *Meeting) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
