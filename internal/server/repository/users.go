// Package repository содержит реализации слоя доступа к данным (Repository layer).
//
// Репозитории инкапсулируют работу с БД и не содержат бизнес-логики.
// Все ошибки приводятся к доменным ошибкам из internal/shared/errors.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-auth-service/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-auth-service/internal/shared/errors"
)

// UsersRepository отвечает за хранение записей пользователей.
type UsersRepository struct {
	db *sql.DB
}

// NewUsersRepository создаёт новый UsersRepository.
func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create вставляет нового пользователя и возвращает заполненную модель.
//
// Уникальность email гарантирует уникальный индекс в БД: при гонке двух
// регистраций с одинаковым email ровно одна получит ErrAlreadyExists.
func (r *UsersRepository) Create(ctx context.Context, name, email, passwordHash string) (models.User, error) {
	u := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1,$2,$3)
		 RETURNING id, created_at`,
		name, email, passwordHash,
	).Scan(&u.ID, &u.CreatedAt)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" { // unique_violation
				return models.User{}, serr.ErrAlreadyExists
			}
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// GetByEmail возвращает пользователя по email (вместе с хэшем пароля).
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE email=$1`,
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// GetByID возвращает пользователя по идентификатору.
//
// Используется при резолве bearer-токена (GET /v1/user).
func (r *UsersRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE id=$1`,
		id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}
