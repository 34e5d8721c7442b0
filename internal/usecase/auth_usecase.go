package usecase

import (
	"context"
	"errors"
	"fmt"

	"pharmacenter-api/internal/converter"
	"pharmacenter-api/internal/delivery/dto"
	"pharmacenter-api/internal/domain/entity"
	"pharmacenter-api/internal/domain/repository"
	"pharmacenter-api/internal/service"
	pkgjwt "pharmacenter-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type AuthUsecase struct {
	DB          *gorm.DB
	Log         *logrus.Logger
	RedisClient *redis.Client
	UserRepo    repository.UserRepository
	RoleRepo    repository.RoleRepository
	JWTService  *pkgjwt.JWTService
	Audit       service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	redisClient *redis.Client,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	jwtService *pkgjwt.JWTService,
	audit service.AuditService,
) *AuthUsecase {
	return &AuthUsecase{
		DB:          db,
		Log:         log,
		RedisClient: redisClient,
		UserRepo:    userRepo,
		RoleRepo:    roleRepo,
		JWTService:  jwtService,
		Audit:       audit,
	}
}

// Register creates a patient account. Staff and admin accounts are never
// self-registered; they are provisioned by an admin.
func (u *AuthUsecase) Register(ctx context.Context, request *dto.RegisterPatientRequest) (*dto.UserResponse, error) {
	db := u.DB.WithContext(ctx)

	existing, err := u.UserRepo.FindByEmail(db, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	role, err := u.RoleRepo.FindByID(db, entity.RoleIDPatient)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, fmt.Errorf("role %d is not provisioned", entity.RoleIDPatient)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		RoleID:   entity.RoleIDPatient,
		Email:    request.Email,
		Password: string(hashed),
		FullName: request.FullName,
		Phone:    request.Phone,
	}

	if err := u.UserRepo.Create(db, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		u.Log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	u.Audit.Record(db, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), map[string]interface{}{
		"email": user.Email,
	})

	user.Role = *role
	return converter.UserToResponse(user), nil
}

// Login verifies credentials and issues an access/refresh token pair. Token
// ids are registered in Redis so a logout can revoke them before expiry.
func (u *AuthUsecase) Login(ctx context.Context, request *dto.LoginRequest) (*dto.TokenResponse, error) {
	db := u.DB.WithContext(ctx)

	user, err := u.UserRepo.FindByEmail(db, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.Active() {
		return nil, ErrAccountDisabled
	}

	tokens, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	u.Audit.Record(db, &user.ID, entity.AuditActionUserLogin, "user", user.ID.String(), nil)
	return tokens, nil
}

// RefreshToken rotates the session: the presented refresh token is revoked
// and a fresh pair is issued.
func (u *AuthUsecase) RefreshToken(ctx context.Context, request *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.JWTService.ValidateToken(request.RefreshToken)
	if err != nil || claims.TokenType != pkgjwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID, claims.TokenID)
	exists, err := u.RedisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.Log.Warnf("Failed to check refresh token state: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrInvalidToken
	}

	user, err := u.UserRepo.FindByID(u.DB.WithContext(ctx), claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active() {
		return nil, ErrAccountDisabled
	}

	if err := u.RedisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.Log.Warnf("Failed to revoke rotated refresh token: %+v", err)
	}

	return u.issueTokens(ctx, user)
}

// Logout revokes the current access token id.
func (u *AuthUsecase) Logout(ctx context.Context, userID uuid.UUID, tokenID string) error {
	accessKey := fmt.Sprintf("access_token:%s:%s", userID, tokenID)
	if err := u.RedisClient.Del(ctx, accessKey).Err(); err != nil {
		u.Log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}

	u.Audit.Record(u.DB.WithContext(ctx), &userID, entity.AuditActionUserLogout, "user", userID.String(), nil)
	return nil
}

// GetCurrentUser returns the authenticated account's profile.
func (u *AuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.UserRepo.FindByID(u.DB.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

// ListUsers is the back-office account directory.
func (u *AuthUsecase) ListUsers(ctx context.Context, limit, offset int) (*dto.UserListResponse, error) {
	users, total, err := u.UserRepo.FindAll(u.DB.WithContext(ctx), limit, offset)
	if err != nil {
		u.Log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: total,
	}, nil
}

// SetUserActive enables or disables an account. Disabling does not touch
// live Redis sessions; those lapse with their token expiry.
func (u *AuthUsecase) SetUserActive(ctx context.Context, actorID, targetID uuid.UUID, active bool) error {
	db := u.DB.WithContext(ctx)

	rows, err := u.UserRepo.SetActive(db, targetID, active)
	if err != nil {
		u.Log.Warnf("Failed to toggle user %s: %+v", targetID, err)
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	u.Audit.Record(db, &actorID, entity.AuditActionUserToggle, "user", targetID.String(), map[string]interface{}{
		"is_active": active,
	})
	return nil
}

func (u *AuthUsecase) issueTokens(ctx context.Context, user *entity.User) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.JWTService.GenerateAccessToken(user.ID, user.Email, user.RoleID)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshTokenID, err := u.JWTService.GenerateRefreshToken(user.ID, user.Email, user.RoleID)
	if err != nil {
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", user.ID, accessTokenID)
	if err := u.RedisClient.Set(ctx, accessKey, "valid", u.JWTService.GetAccessExpiry()).Err(); err != nil {
		u.Log.Warnf("Failed to register access token: %+v", err)
		return nil, err
	}
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", user.ID, refreshTokenID)
	if err := u.RedisClient.Set(ctx, refreshKey, "valid", u.JWTService.GetRefreshExpiry()).Err(); err != nil {
		u.Log.Warnf("Failed to register refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(u.JWTService.GetAccessExpiry().Seconds()),
	}, nil
}
