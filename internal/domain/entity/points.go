package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// CodeKind is the class of a redemption code, selected by its length.
type CodeKind string

const (
	// CodeKindVisit codes have 3 digits and are handed out per meal.
	CodeKindVisit CodeKind = "3d"
	// CodeKindReferral codes have 5 digits and reward bringing a friend.
	CodeKindReferral CodeKind = "5d"
)

// Digits returns the code length for the kind.
func (k CodeKind) Digits() int {
	switch k {
	case CodeKindVisit:
		return 3
	case CodeKindReferral:
		return 5
	default:
		return 0
	}
}

// IsValid checks if the CodeKind is a valid value.
func (k CodeKind) IsValid() bool {
	return k.Digits() != 0
}

// Description is the ledger text for an award of this kind.
func (k CodeKind) Description() string {
	if k == CodeKindReferral {
		return "Por referir amigo"
	}

	return "Por comer"
}

// ParseCodeKind classifies a code by its text. ok is false unless the code is
// made only of ASCII digits and has 3 or 5 of them.
func ParseCodeKind(code string) (kind CodeKind, ok bool) {
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return "", false
		}
	}

	switch len(code) {
	case 3:
		return CodeKindVisit, true
	case 5:
		return CodeKindReferral, true
	default:
		return "", false
	}
}

// RedemptionCode is a single-use code that awards points once.
type RedemptionCode struct {
	ID         uuid.UUID  `json:"id"`
	Code       string     `json:"code"`
	Kind       CodeKind   `json:"type"`
	Consumed   bool       `json:"used"`
	ConsumedBy *uuid.UUID `json:"used_by,omitempty"`
	ConsumedAt *time.Time `json:"used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// LedgerDirection tells whether an entry added or removed points.
type LedgerDirection string

const (
	LedgerEarned LedgerDirection = "earned"
	LedgerUsed   LedgerDirection = "used"
)

// LedgerEntry is an immutable record of a balance change.
type LedgerEntry struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Direction   LedgerDirection `json:"type"`
	Points      int             `json:"points"` // Always positive; Direction carries the sign.
	Code        string          `json:"code,omitempty"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PointsPolicy holds the loyalty program constants.
type PointsPolicy struct {
	PointsPerVisit    int `json:"points_per_visit"`
	PointsPerReferral int `json:"points_per_referral"`
	MinimumRedeem     int `json:"minimum_redeem"`
}

// Award returns the points granted by a code of the given kind.
func (p PointsPolicy) Award(kind CodeKind) int {
	if kind == CodeKindReferral {
		return p.PointsPerReferral
	}

	return p.PointsPerVisit
}

// Eligible reports whether balance is enough to redeem a reward.
// The boundary balance == MinimumRedeem is eligible.
func (p PointsPolicy) Eligible(balance int) bool {
	return balance >= p.MinimumRedeem
}

// Progress is the percentage of the way to MinimumRedeem, capped at 100.
func (p PointsPolicy) Progress(balance int) int {
	if p.MinimumRedeem <= 0 || balance >= p.MinimumRedeem {
		return 100
	}
	if balance <= 0 {
		return 0
	}

	return int(math.Round(float64(balance) / float64(p.MinimumRedeem) * 100))
}

// Redemption is the outcome of a successful code redemption.
type Redemption struct {
	Code       string   `json:"code"`
	Kind       CodeKind `json:"type"`
	Award      int      `json:"award"`
	NewBalance int      `json:"new_balance"`
	Eligible   bool     `json:"eligible"`
}

// StatementPeriod is the window a customer can list ledger entries for.
type StatementPeriod string

const (
	PeriodWeek  StatementPeriod = "week"
	PeriodMonth StatementPeriod = "month"
)

// Duration returns the window length; unknown periods fall back to a week.
func (p StatementPeriod) Duration() time.Duration {
	if p == PeriodMonth {
		return 30 * 24 * time.Hour
	}

	return 7 * 24 * time.Hour
}
