package usecase

import (
	"context"

	"aunerarroz/internal/domain/entity"

	"github.com/google/uuid"
)

// PointsSummary is the customer's loyalty card.
type PointsSummary struct {
	Balance  int                 `json:"balance"`
	Eligible bool                `json:"eligible"`
	Progress int                 `json:"progress"`
	Policy   entity.PointsPolicy `json:"policy"`
}

// TransactionStatement lists ledger entries for a period with totals.
type TransactionStatement struct {
	Period  entity.StatementPeriod `json:"period"`
	Entries []*entity.LedgerEntry  `json:"entries"`
	Earned  int                    `json:"earned"`
	Used    int                    `json:"used"`
}

// PointsUsecase redeems codes and reports balances.
type PointsUsecase interface {
	// Redeem consumes code for userID and awards points in one transaction.
	// currentBalance is the caller's cached balance; the stored balance wins.
	Redeem(ctx context.Context, userID uuid.UUID, code string, currentBalance int) (*entity.Redemption, error)

	// RedeemEligibility reports whether balance reaches the minimum to redeem a reward.
	RedeemEligibility(balance int) bool

	GetSummary(ctx context.Context, userID uuid.UUID) (*PointsSummary, error)

	ListTransactions(ctx context.Context, userID uuid.UUID, period entity.StatementPeriod) (*TransactionStatement, error)
}
