package usecase

import (
	"context"
	"errors"
	"strings"

	"medinote/internal/converter"
	"medinote/internal/delivery/dto"
	"medinote/internal/domain/entity"
	"medinote/internal/domain/repository"
	"medinote/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type UserUsecase interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
}

type userUsecase struct {
	log       *logrus.Logger
	userRepo  repository.UserRepository
	validator *validator.CustomValidator
}

func NewUserUsecase(log *logrus.Logger, userRepo repository.UserRepository, validator *validator.CustomValidator) UserUsecase {
	return &userUsecase{
		log:       log,
		userRepo:  userRepo,
		validator: validator,
	}
}

func (u *userUsecase) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := u.validator.Validate(req); err != nil {
		return nil, &ValidationError{Fields: u.validator.FormatValidationErrors(err)}
	}

	existing, err := u.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Username: req.Username,
		Password: string(hashedPassword),
		Role:     entity.Role(req.Role),
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
