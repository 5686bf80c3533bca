package usecase

import (
	"context"

	"aunerarroz/internal/domain/entity"

	"github.com/google/uuid"
)

// ListCodesInput filters the code list.
type ListCodesInput struct {
	Kind       entity.CodeKind
	UnusedOnly bool
	Limit      int
}

// CodeList is the admin view of redemption codes.
type CodeList struct {
	Codes        []*entity.RedemptionCode `json:"codes"`
	UnusedByKind map[entity.CodeKind]int  `json:"unused_by_kind"`
	Policy       entity.PointsPolicy      `json:"policy"`
}

// DeductOutput is the result of an admin deduction.
type DeductOutput struct {
	UserID     uuid.UUID `json:"user_id"`
	Deducted   int       `json:"deducted"`
	NewBalance int       `json:"new_balance"`
}

// PointsAdminUsecase is the back-office side of the loyalty program.
type PointsAdminUsecase interface {
	// GenerateCodes issues a batch of unconsumed codes of the given kind.
	GenerateCodes(ctx context.Context, kind entity.CodeKind) ([]*entity.RedemptionCode, error)

	ListCodes(ctx context.Context, input ListCodesInput) (*CodeList, error)

	// CodeQR renders a printable PNG for a code.
	CodeQR(ctx context.Context, codeID uuid.UUID) ([]byte, error)

	// DeductPoints subtracts amount when the balance covers it and records a "used" entry.
	DeductPoints(ctx context.Context, userID uuid.UUID, amount int, reason string) (*DeductOutput, error)

	ListCustomers(ctx context.Context) ([]*entity.User, error)
}
