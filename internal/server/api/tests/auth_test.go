package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-auth-service/internal/server/api"
	"github.com/IvanChernomyrdin/go-auth-service/internal/server/config"
	"github.com/IvanChernomyrdin/go-auth-service/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-auth-service/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-auth-service/internal/server/models"
	"github.com/IvanChernomyrdin/go-auth-service/internal/server/service"
	"github.com/IvanChernomyrdin/go-auth-service/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-auth-service/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-auth-service/internal/shared/logger"
	sharedmodels "github.com/IvanChernomyrdin/go-auth-service/internal/shared/models"
)

const (
	testSigningKey = "supersecretkeysupersecretkey123456"
	testIssuer     = "auth-service"
	testAudience   = "auth-service-clients"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.Issuer = testIssuer
	cfg.Auth.Audience = testAudience
	cfg.Auth.TokenName = "Personal Access Token"
	cfg.Auth.JWT.Algorithm = "HS256"
	cfg.Auth.JWT.SigningKey = testSigningKey
	cfg.Password.Hasher = "argon2id"
	cfg.Password.MinLength = 8
	cfg.Password.Argon2.Time = 1
	cfg.Password.Argon2.MemoryKiB = 32 * 1024
	cfg.Password.Argon2.Threads = 1
	cfg.Password.Argon2.KeyLen = 32
	cfg.Password.Argon2.SaltLen = 16
	return cfg
}

// newTestRouter собирает реальный роутер над мокнутыми репозиториями
func newTestRouter(t *testing.T) (http.Handler, *mocks.MockUsersRepo, *mocks.MockTokensRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepo(ctrl)
	tokens := mocks.NewMockTokensRepo(ctrl)

	svc := service.NewServices(service.Repositories{Users: users, Tokens: tokens}, testConfig())
	log := &logger.HTTPLogger{Logger: zap.NewNop()}
	verifier := middleware.NewTokenVerifier(testSigningKey, testIssuer, testAudience)

	return api.NewRouter(api.NewHandler(svc, log, verifier)), users, tokens
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// Регистрация: 201 + конверт success + токен + пользователь без хэша
func TestRegister_Created(t *testing.T) {
	h, users, tokens := newTestRouter(t)

	userID := uuid.New()
	createdAt := time.Now().UTC().Truncate(time.Second)

	users.EXPECT().
		Create(gomock.Any(), "Ann", "ann@mail.com", gomock.Any()).
		Return(models.User{ID: userID, Name: "Ann", Email: "ann@mail.com", PasswordHash: "hash", CreatedAt: createdAt}, nil)
	tokens.EXPECT().
		Create(gomock.Any(), userID, "Personal Access Token").
		Return(uuid.New(), time.Now(), nil)

	rec := postJSON(t, h, "/v1/register", map[string]string{
		"name":     "Ann",
		"email":    "ann@mail.com",
		"password": "password123",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp sharedmodels.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, sharedmodels.StatusSuccess, resp.Status)
	require.Equal(t, "User registered successfully.", resp.Message)
	require.NotEmpty(t, resp.Data.Token)
	require.Equal(t, userID.String(), resp.Data.User.ID)
	require.Equal(t, "ann@mail.com", resp.Data.User.Email)

	// хэша пароля в сыром ответе быть не должно
	require.NotContains(t, rec.Body.String(), "hash")
}

// Регистрация: 422 с ошибками по полям
func TestRegister_ValidationError(t *testing.T) {
	h, _, _ := newTestRouter(t)

	rec := postJSON(t, h, "/v1/register", map[string]string{
		"name":     "",
		"email":    "not-an-email",
		"password": "short",
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp sharedmodels.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, sharedmodels.StatusFailed, resp.Status)
	require.Equal(t, "The given data was invalid.", resp.Message)
	require.Equal(t, []string{"name is required"}, resp.Errors["name"])
	require.Equal(t, []string{"email must be a valid email address"}, resp.Errors["email"])
	require.Equal(t, []string{"password must be at least 8 characters"}, resp.Errors["password"])
}

// Регистрация: занятый email — тот же 422
func TestRegister_EmailTaken(t *testing.T) {
	h, users, _ := newTestRouter(t)

	users.EXPECT().
		Create(gomock.Any(), "Ann", "ann@mail.com", gomock.Any()).
		Return(models.User{}, serr.ErrAlreadyExists)

	rec := postJSON(t, h, "/v1/register", map[string]string{
		"name":     "Ann",
		"email":    "ann@mail.com",
		"password": "password123",
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp sharedmodels.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, []string{"email has already been taken"}, resp.Errors["email"])
}

// Битый JSON — 400
func TestRegister_BadJSON(t *testing.T) {
	h, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/register", bytes.NewReader([]byte("{broken")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp sharedmodels.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, sharedmodels.StatusFailed, resp.Status)
}

// Логин: 200 + новый токен
func TestLogin_OK(t *testing.T) {
	h, users, tokens := newTestRouter(t)

	hash, err := crypto.HashPassword("password123", crypto.Argon2Params{
		Time: 1, MemoryKiB: 32 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16,
	})
	require.NoError(t, err)

	userID := uuid.New()
	users.EXPECT().
		GetByEmail(gomock.Any(), "ann@mail.com").
		Return(models.User{ID: userID, Name: "Ann", Email: "ann@mail.com", PasswordHash: hash}, nil)
	tokens.EXPECT().
		Create(gomock.Any(), userID, "Personal Access Token").
		Return(uuid.New(), time.Now(), nil)

	rec := postJSON(t, h, "/v1/login", map[string]string{
		"email":    "ann@mail.com",
		"password": "password123",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp sharedmodels.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, sharedmodels.StatusSuccess, resp.Status)
	require.Equal(t, "Login successful.", resp.Message)
	require.NotEmpty(t, resp.Data.Token)
}

// Логин: неизвестный email и неверный пароль — один и тот же ответ
func TestLogin_Unauthorized(t *testing.T) {
	h, users, _ := newTestRouter(t)

	hash, err := crypto.HashPassword("password123", crypto.Argon2Params{
		Time: 1, MemoryKiB: 32 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16,
	})
	require.NoError(t, err)

	users.EXPECT().
		GetByEmail(gomock.Any(), "ghost@mail.com").
		Return(models.User{}, serr.ErrNotFound)
	users.EXPECT().
		GetByEmail(gomock.Any(), "ann@mail.com").
		Return(models.User{ID: uuid.New(), Email: "ann@mail.com", PasswordHash: hash}, nil)

	recUnknown := postJSON(t, h, "/v1/login", map[string]string{
		"email":    "ghost@mail.com",
		"password": "password123",
	})
	recWrong := postJSON(t, h, "/v1/login", map[string]string{
		"email":    "ann@mail.com",
		"password": "wrong-password",
	})

	require.Equal(t, http.StatusUnauthorized, recUnknown.Code)
	require.Equal(t, http.StatusUnauthorized, recWrong.Code)
	// тело не различается — не палим, что именно не подошло
	require.JSONEq(t, recUnknown.Body.String(), recWrong.Body.String())

	var resp sharedmodels.ErrorResponse
	require.NoError(t, json.Unmarshal(recUnknown.Body.Bytes(), &resp))
	require.Equal(t, sharedmodels.StatusFailed, resp.Status)
	require.Equal(t, "Unauthorized", resp.Message)
	require.Nil(t, resp.Errors)
}

// GET /v1/user с валидным токеном
func TestGetUser_OK(t *testing.T) {
	h, users, tokens := newTestRouter(t)

	tokenID := uuid.New()
	userID := uuid.New()

	tokenStr, err := crypto.NewAccessToken(tokenID.String(), userID.String(), crypto.TokenConfig{
		Issuer:     testIssuer,
		Audience:   testAudience,
		SigningKey: testSigningKey,
	})
	require.NoError(t, err)

	tokens.EXPECT().GetByID(gomock.Any(), tokenID).Return(userID, nil)
	users.EXPECT().GetByID(gomock.Any(), userID).
		Return(models.User{ID: userID, Name: "Ann", Email: "ann@mail.com", PasswordHash: "hash"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/user", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp sharedmodels.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, userID.String(), resp.User.ID)
	require.Equal(t, "Ann", resp.User.Name)
	require.Equal(t, "ann@mail.com", resp.User.Email)
	require.NotContains(t, rec.Body.String(), "hash")
}

// GET /v1/user без токена
func TestGetUser_NoToken(t *testing.T) {
	h, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/user", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"status":"failed","message":"Unauthorized"}`, rec.Body.String())
}

// GET /v1/user: подпись валидна, но запись токена удалена
func TestGetUser_RevokedToken(t *testing.T) {
	h, _, tokens := newTestRouter(t)

	tokenID := uuid.New()
	tokenStr, err := crypto.NewAccessToken(tokenID.String(), uuid.New().String(), crypto.TokenConfig{
		Issuer:     testIssuer,
		Audience:   testAudience,
		SigningKey: testSigningKey,
	})
	require.NoError(t, err)

	tokens.EXPECT().GetByID(gomock.Any(), tokenID).Return(uuid.UUID{}, serr.ErrUnauthorized)

	req := httptest.NewRequest(http.MethodGet, "/v1/user", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp sharedmodels.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Unauthorized", resp.Message)
}
