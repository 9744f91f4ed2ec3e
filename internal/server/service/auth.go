package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-auth-service/internal/server/config"
	"github.com/IvanChernomyrdin/go-auth-service/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-auth-service/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-auth-service/internal/shared/errors"
)

// формат email как у регистрации: что-то@что-то.домен
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService реализует бизнес-логику аутентификации.
//
// Ответственность:
//   - регистрация пользователей (валидация -> хэш -> запись -> токен)
//   - аутентификация (логин) с выдачей нового токена
//   - резолв bearer-токена в пользователя (whoami)
type AuthService struct {
	users  UsersRepo
	tokens TokensRepo

	pass  crypto.Argon2Params
	token crypto.TokenConfig

	tokenName   string
	minPassword int
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, tokens TokensRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,

		pass: crypto.Argon2Params{
			Time:      cfg.Password.Argon2.Time,
			MemoryKiB: cfg.Password.Argon2.MemoryKiB,
			Threads:   cfg.Password.Argon2.Threads,
			KeyLen:    cfg.Password.Argon2.KeyLen,
			SaltLen:   cfg.Password.Argon2.SaltLen,
		},
		token: crypto.TokenConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
		},

		tokenName:   cfg.Auth.TokenName,
		minPassword: cfg.Password.MinLength,
	}
}

// Register регистрирует нового пользователя и сразу выдаёт ему токен.
//
// Валидация:
//   - name обязателен
//   - email обязателен и должен быть валидным
//   - пароль обязателен и длиной >= password.min_length (8)
//
// Все нарушения собираются в один *ValidationError (по полям), занятый email
// тоже попадает туда как ошибка поля email — наружу это один и тот же 422.
//
// Возвращает пользователя и подписанный токен. Хэш пароля из сервиса не выходит
// дальше api слоя (модель наружу сериализуется без него).
func (s *AuthService) Register(ctx context.Context, name, email, password string) (models.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)

	v := serr.NewValidationError()
	if name == "" {
		v.Add("name", "name is required")
	}
	if email == "" {
		v.Add("email", "email is required")
	} else if !emailRe.MatchString(email) {
		v.Add("email", "email must be a valid email address")
	}
	if password == "" {
		v.Add("password", "password is required")
	} else if len(password) < s.minPassword {
		v.Add("password", "password must be at least 8 characters")
	}
	if !v.Empty() {
		return models.User{}, "", v
	}

	hash, err := crypto.HashPassword(password, s.pass)
	if err != nil {
		return models.User{}, "", serr.ErrInternal
	}

	user, err := s.users.Create(ctx, name, email, hash)
	if err != nil {
		// занятый email — та же валидационная ошибка, что и остальные
		if errors.Is(err, serr.ErrAlreadyExists) {
			v.Add("email", "email has already been taken")
			return models.User{}, "", v
		}
		return models.User{}, "", err
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Login аутентифицирует пользователя и выдаёт новый токен.
//
// Поведение:
//   - не раскрывает факт существования email: неизвестный email и неверный
//     пароль дают одинаковую ErrInvalidCredentials;
//   - каждый логин выдаёт новый токен, прежние токены остаются действительными.
//
// Ошибки:
//   - ErrInvalidCredentials
//   - ErrInternal
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return models.User{}, "", serr.ErrInvalidCredentials
	}
	// получаем юзера по email
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return models.User{}, "", serr.ErrInvalidCredentials
		}
		return models.User{}, "", err
	}
	// проверяем пароль
	ok, err := crypto.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return models.User{}, "", serr.ErrInternal
	}
	if !ok {
		return models.User{}, "", serr.ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Whoami резолвит проверенный middleware-ом токен в пользователя.
//
// tokenID — jti из подписанного токена. Запись токена обязана существовать
// в БД: подпись валидна, но записи нет — значит токен удалён или подделан
// на неизвестном ключе, отвечаем ErrUnauthorized.
func (s *AuthService) Whoami(ctx context.Context, tokenID string) (models.User, error) {
	id, err := uuid.Parse(strings.TrimSpace(tokenID))
	if err != nil {
		return models.User{}, serr.ErrUnauthorized
	}

	userID, err := s.tokens.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return models.User{}, serr.ErrUnauthorized
		}
		return models.User{}, err
	}
	return user, nil
}

// issueToken создаёт запись токена в БД и подписывает строку с jti этой записи.
func (s *AuthService) issueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	tokenID, _, err := s.tokens.Create(ctx, userID, s.tokenName)
	if err != nil {
		return "", err
	}

	token, err := crypto.NewAccessToken(tokenID.String(), userID.String(), s.token)
	if err != nil {
		return "", serr.ErrInternal
	}
	return token, nil
}
