// Package service содержит бизнес-логику приложения.
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-auth-service/internal/server/config"
	"github.com/IvanChernomyrdin/go-auth-service/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users  UsersRepo
	Tokens TokensRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth *AuthService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хеширования пароля и подписи токенов).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth: NewAuthService(repos.Users, repos.Tokens, cfg),
	}
}

// UsersRepo — репозиторий пользователей (нужен для register/login/whoami).
type UsersRepo interface {
	Create(ctx context.Context, name, email, passwordHash string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
}

// TokensRepo — репозиторий выданных bearer-токенов.
type TokensRepo interface {
	Create(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, time.Time, error)
	GetByID(ctx context.Context, tokenID uuid.UUID) (uuid.UUID, error)
}
