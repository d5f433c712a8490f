// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"taskhive/internal/domain/entity"
	domainerrors "taskhive/internal/domain/errors"
	"taskhive/internal/domain/repository"
	"taskhive/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return userM.ToEntity(), nil
}

// FindByEmail retrieves a user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return userM.ToEntity(), nil
}

// FindByUsername retrieves a user by their username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return userM.ToEntity(), nil
}

// Create persists a new user. Duplicate email and username violations are
// mapped onto their dedicated domain errors so the use case layer can report
// the right conflict without parsing driver messages.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.UserModelFromEntity(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatedConstraint(err, "username") {
				return domainerrors.ErrUsernameTaken
			}

			return domainerrors.ErrEmailTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update persists the full state of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := model.UserModelFromEntity(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userM.ID).
		Updates(map[string]any{
			"username":      userM.Username,
			"email":         userM.Email,
			"password_hash": userM.PasswordHash,
			"role":          userM.Role,
			"is_active":     userM.IsActive,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			if violatedConstraint(result.Error, "username") {
				return domainerrors.ErrUsernameTaken
			}

			return domainerrors.ErrEmailTaken
		}

		return errors.Wrap(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ListAll retrieves every user ordered by creation time, newest first.
func (repo *userRepository) ListAll(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, userM.ToEntity())
	}

	return users, nil
}
