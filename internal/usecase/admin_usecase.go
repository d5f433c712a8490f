package usecase

import (
	"context"

	"taskhive/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminUsecase defines the operations reserved for administrators. The
// returned records are complete, password hashes included, so the delivery
// layer decides explicitly which projection to expose.
type AdminUsecase interface {
	ListUsers(ctx context.Context, adminID uuid.UUID) ([]*entity.User, error)
	GetUser(ctx context.Context, adminID, userID uuid.UUID) (*entity.User, error)
}
