// Package impl contains the implementations of the application's use cases.
package impl

import (
	"context"
	"log/slog"

	"taskhive/internal/domain/entity"
	domainerrors "taskhive/internal/domain/errors"
	"taskhive/internal/domain/repository"
	"taskhive/internal/domain/service"
	"taskhive/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register orchestrates the complete account registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting user registration", "email", input.Email, "username", input.Username)

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.WithStack(err)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var registeredUser *entity.User

	// Execute the entire creation process within a single database transaction
	// to ensure data consistency (atomicity).
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Check whether the email is already registered.
		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrEmailTaken
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up email")
		}

		// 2. Check whether the username is already registered.
		if _, err := userRepo.FindByUsername(ctx, input.Username); err == nil {
			return domainerrors.ErrUsernameTaken
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up username")
		}

		// 3. Create the user. The unique constraints remain the final arbiter
		// against concurrent registrations racing past the pre-checks.
		newUser := &entity.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			Role:         entity.RoleUser,
			IsActive:     true,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.logger.Warn("User registration failed", "email", input.Email, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}
	srv.logger.Debug("User registered successfully", "userID", registeredUser.ID)

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login orchestrates the login process. Every failure collapses to invalid
// credentials at the boundary; the log line records the real cause.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting user login", "email", input.Email)

	var loggedInUser *entity.User
	var accessToken string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Find the account.
		user, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
		}

		// 2. Reject deactivated accounts with the same opaque error.
		if !user.IsActive {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "account deactivated")
		}

		// 3. Check the password.
		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
		}

		// 4. Issue the access token with the role riding as a claim.
		accessToken, err = srv.tokenService.Generate(user.ID, []string{user.Role.String()})
		if err != nil {
			return errors.Wrap(err, "failed to generate access token")
		}
		loggedInUser = user

		return nil
	})

	if err != nil {
		srv.logger.Warn("Login failed", "email", input.Email, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute user login transaction")
	}
	srv.logger.Debug("User logged in successfully", "userID", loggedInUser.ID)

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		ExpiresIn:   int64(srv.tokenService.AccessTokenDuration().Seconds()),
		User:        loggedInUser,
	}, nil
}

// Profile returns the authenticated caller's own record.
func (srv *authService) Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
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
		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}
