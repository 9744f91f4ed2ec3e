// Серверные модели пользователя и access-токена
package models

import (
	"time"

	"github.com/google/uuid"
)

// User — запись пользователя в БД.
//
// PasswordHash хранится в формате argon2id и наружу не отдаётся.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// AccessToken — запись выданного bearer-токена.
//
// На одного пользователя может приходиться много токенов:
// каждый логин выдаёт новый, старые остаются действительными.
type AccessToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
}
