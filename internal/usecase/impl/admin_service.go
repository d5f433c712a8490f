package impl

import (
	"context"
	"log/slog"

	"taskhive/internal/domain/entity"
	domainerrors "taskhive/internal/domain/errors"
	"taskhive/internal/domain/repository"
	"taskhive/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface. The role check lives
// in the delivery middleware; this layer logs every access so reads of full
// user records stay attributable to a specific administrator.
type adminService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListUsers returns every registered user, full records included.
func (srv *adminService) ListUsers(ctx context.Context, adminID uuid.UUID) ([]*entity.User, error) {
	srv.logger.Info("Admin user listing", "adminID", adminID)

	var users []*entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().ListAll(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		users = found

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to list users", "adminID", adminID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute user listing transaction")
	}

	return users, nil
}

// GetUser returns a single user's full record by ID.
func (srv *adminService) GetUser(ctx context.Context, adminID, userID uuid.UUID) (*entity.User, error) {
	srv.logger.Info("Admin user lookup", "adminID", adminID, "targetID", userID)

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user by id")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute user lookup transaction")
	}

	return user, nil
}
