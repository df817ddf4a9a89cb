package models

import (
	"time"

	"github.com/google/uuid"
)

type (
	Account struct {
		ID            uuid.UUID `db:"id"`
		Phone         string    `db:"phone"`
		Balance       int64     `db:"balance"`
		Tier          Tier      `db:"tier"`
		LifetimeSpend int64     `db:"lifetime_spend"`
		CreatedAt     time.Time `db:"created_at"`
		UpdatedAt     time.Time `db:"updated_at"`
	}
	LedgerEntry struct {
		ID        uuid.UUID `db:"id"`
		AccountID uuid.UUID `db:"account_id"`
		Amount    int64     `db:"amount"`
		Reason    string    `db:"reason"`
		CreatedAt time.Time `db:"created_at"`
	}
	Order struct {
		ID            int64       `db:"id"`
		Phone         string      `db:"phone"`
		Total         int64       `db:"total"`
		Status        OrderStatus `db:"status"`
		BonusAccrued  bool        `db:"bonus_accrued"`
		BonusAmount   int64       `db:"bonus_amount"`
		SpendRecorded bool        `db:"spend_recorded"`
		CreatedAt     time.Time   `db:"created_at"`
		UpdatedAt     time.Time   `db:"updated_at"`
	}
	Reconciliation struct {
		Phone     string
		Balance   int64
		LedgerSum int64
	}
)

func (r Reconciliation) Consistent() bool {
	return r.Balance == r.LedgerSum
}

type Tier string

func (t Tier) String() string {
	return string(t)
}

const (
	Bronze   Tier = "bronze"
	Silver   Tier = "silver"
	Gold     Tier = "gold"
	Platinum Tier = "platinum"
	Premium  Tier = "premium"
)

// Rank orders tiers from bronze (0) to premium (4); unknown tiers rank -1.
func (t Tier) Rank() int {
	switch t {
	case Bronze:
		return 0
	case Silver:
		return 1
	case Gold:
		return 2
	case Platinum:
		return 3
	case Premium:
		return 4
	}
	return -1
}

type OrderStatus string

func (s OrderStatus) String() string {
	return string(s)
}

const (
	PENDING    OrderStatus = "pending"
	PROCESSING OrderStatus = "processing"
	DELIVERING OrderStatus = "delivering"
	DELIVERED  OrderStatus = "delivered"
	CANCELED   OrderStatus = "canceled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case PENDING, PROCESSING, DELIVERING, DELIVERED, CANCELED:
		return true
	}
	return false
}

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)
