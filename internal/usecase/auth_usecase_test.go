package usecase

import (
	"context"
	"testing"
	"time"

	"pharmacenter-api/config"
	"pharmacenter-api/internal/delivery/dto"
	"pharmacenter-api/internal/domain/entity"
	pkgjwt "pharmacenter-api/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	uc       *AuthUsecase
	userRepo *fakeUserRepo
	roleRepo *fakeRoleRepo
	redis    *miniredis.Miniredis
	jwt      *pkgjwt.JWTService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	jwtService := pkgjwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})

	userRepo := newFakeUserRepo()
	roleRepo := newFakeRoleRepo()

	return &authFixture{
		uc:       NewAuthUsecase(newTestDB(t), newTestLogger(), client, userRepo, roleRepo, jwtService, &fakeAuditService{}),
		userRepo: userRepo,
		roleRepo: roleRepo,
		redis:    mr,
		jwt:      jwtService,
	}
}

func (f *authFixture) seedUser(t *testing.T, password string) *entity.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		ID:       uuid.New(),
		RoleID:   entity.RoleIDPatient,
		Email:    "pat@example.com",
		Password: string(hashed),
		FullName: "Pat Dupont",
		Role:     entity.Role{ID: entity.RoleIDPatient, RoleName: entity.RolePatient},
	}
	f.userRepo.users[user.ID] = user
	return user
}

func TestRegister(t *testing.T) {
	f := newAuthFixture(t)

	user, err := f.uc.Register(context.Background(), &dto.RegisterPatientRequest{
		Email:    "new@example.com",
		Password: "supersecret",
		FullName: "New Patient",
	})
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, entity.RolePatient, user.Role)
	assert.True(t, user.IsActive)
}

func TestRegisterLoadsRoleRecord(t *testing.T) {
	f := newAuthFixture(t)
	f.roleRepo.roles[entity.RoleIDPatient].Description = "Patient account"

	user, err := f.uc.Register(context.Background(), &dto.RegisterPatientRequest{
		Email:    "new@example.com",
		Password: "supersecret",
		FullName: "New Patient",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RolePatient, user.Role)

	stored, err := f.uc.UserRepo.FindByEmail(f.uc.DB, "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Patient account", stored.Role.Description)
}

func TestRegisterUnprovisionedRole(t *testing.T) {
	f := newAuthFixture(t)
	delete(f.roleRepo.roles, entity.RoleIDPatient)

	_, err := f.uc.Register(context.Background(), &dto.RegisterPatientRequest{
		Email:    "new@example.com",
		Password: "supersecret",
		FullName: "New Patient",
	})
	assert.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "supersecret")

	_, err := f.uc.Register(context.Background(), &dto.RegisterPatientRequest{
		Email:    "pat@example.com",
		Password: "supersecret",
		FullName: "Someone Else",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "supersecret")

	tokens, err := f.uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "pat@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "Bearer", tokens.TokenType)

	// Both token ids registered for revocation.
	claims, err := f.jwt.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.True(t, f.redis.Exists("access_token:"+claims.UserID.String()+":"+claims.TokenID))
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "supersecret")

	_, err := f.uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "pat@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	f := newAuthFixture(t)
	user := f.seedUser(t, "supersecret")
	disabled := false
	user.IsActive = &disabled

	_, err := f.uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "pat@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestRefreshTokenRotates(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "supersecret")

	tokens, err := f.uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "pat@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	fresh, err := f.uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: tokens.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)

	// The old refresh token was revoked by rotation.
	_, err = f.uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: tokens.RefreshToken,
	})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "supersecret")

	tokens, err := f.uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "pat@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = f.uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: tokens.AccessToken,
	})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesAccessToken(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "supersecret")

	tokens, err := f.uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "pat@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	claims, err := f.jwt.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)

	require.NoError(t, f.uc.Logout(context.Background(), claims.UserID, claims.TokenID))
	assert.False(t, f.redis.Exists("access_token:"+claims.UserID.String()+":"+claims.TokenID))
}

func TestSetUserActive(t *testing.T) {
	f := newAuthFixture(t)
	user := f.seedUser(t, "supersecret")

	require.NoError(t, f.uc.SetUserActive(context.Background(), uuid.New(), user.ID, false))
	assert.False(t, user.Active())

	err := f.uc.SetUserActive(context.Background(), uuid.New(), uuid.New(), false)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
