package usecase

import (
	"context"

	"medinote/internal/converter"
	"medinote/internal/delivery/dto"
	"medinote/internal/domain/entity"
	"medinote/internal/domain/repository"
	"medinote/internal/service"
	"medinote/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the username is unknown so both
// failure paths cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("medinote"), bcrypt.DefaultCost)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, principal *entity.Principal) error
	Authenticate(ctx context.Context, token string) (*entity.Principal, error)
}

type authUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	jwtService   *jwt.JWTService
	sessionStore service.SessionStore
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	sessionStore service.SessionStore,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		userRepo:     userRepo,
		jwtService:   jwtService,
		sessionStore: sessionStore,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, sessionID, err := u.jwtService.GenerateSessionToken(user.ID, user.Username, user.Role.String())
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, err
	}

	if err := u.sessionStore.Save(ctx, user.ID, sessionID, u.jwtService.GetSessionTTL()); err != nil {
		u.log.Warnf("Failed to store session: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"user_id": user.ID.String(),
		"role":    user.Role,
	}).Info("User logged in")

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(u.jwtService.GetSessionTTL().Seconds()),
		User:      *converter.UserToResponse(user),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, principal *entity.Principal) error {
	if principal == nil {
		return ErrInvalidSession
	}

	if err := u.sessionStore.Delete(ctx, principal.UserID, principal.SessionID); err != nil {
		u.log.Warnf("Failed to delete session: %+v", err)
		return err
	}

	return nil
}

// Authenticate resolves a session token into the principal it was issued to.
// Role and username come from the users table so a role change or a removed
// account applies to live sessions on their next request.
func (u *authUsecase) Authenticate(ctx context.Context, token string) (*entity.Principal, error) {
	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidSession
	}

	exists, err := u.sessionStore.Exists(ctx, claims.UserID, claims.SessionID)
	if err != nil {
		u.log.Warnf("Failed to check session: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrSessionRevoked
	}

	user, err := u.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find session user: %+v", err)
		return nil, err
	}
	if user == nil || !user.Role.Valid() {
		return nil, ErrSessionRevoked
	}

	return &entity.Principal{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		SessionID: claims.SessionID,
	}, nil
}
