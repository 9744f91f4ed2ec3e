package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	serr "github.com/IvanChernomyrdin/go-auth-service/internal/shared/errors"
)

// TokensRepository отвечает за хранение выданных bearer-токенов.
//
// Каждый успешный register/login добавляет новую запись; записи не отзываются
// и не истекают. Токен считается действительным, пока его строка есть в БД.
type TokensRepository struct {
	db *sql.DB
}

// NewTokensRepository создаёт новый TokensRepository.
func NewTokensRepository(db *sql.DB) *TokensRepository {
	return &TokensRepository{db: db}
}

// Create сохраняет запись нового токена пользователя.
//
// name — человекочитаемое имя токена (из конфига, например "Personal Access Token").
//
// Возвращает:
//   - id созданной записи (попадает в jti подписанного токена)
//   - время создания
func (r *TokensRepository) Create(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, time.Time, error) {
	var (
		id        uuid.UUID
		createdAt time.Time
	)

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO access_tokens (user_id, name)
		 VALUES ($1,$2)
		 RETURNING id, created_at`,
		userID, name,
	).Scan(&id, &createdAt)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23503" { // foreign_key_violation
			return uuid.Nil, time.Time{}, serr.ErrNotFound
		}
		return uuid.Nil, time.Time{}, serr.ErrInternal
	}

	return id, createdAt, nil
}

// GetByID возвращает владельца токена по id записи.
//
// Ошибки:
//   - ErrUnauthorized если записи нет (токен подделан или удалён)
//   - ErrInternal при ошибке БД
func (r *TokensRepository) GetByID(ctx context.Context, tokenID uuid.UUID) (uuid.UUID, error) {
	var userID uuid.UUID

	err := r.db.QueryRowContext(ctx,
		`SELECT user_id FROM access_tokens WHERE id=$1`,
		tokenID,
	).Scan(&userID)

	if err != nil {
		if err == sql.ErrNoRows {
			return uuid.Nil, serr.ErrUnauthorized
		}
		return uuid.Nil, serr.ErrInternal
	}

	return userID, nil
}
