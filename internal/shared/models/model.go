package models

import "time"

// Статусы ответов API.
//
// Каждый ответ сервера несёт поле status:
//   - "success" — операция выполнена;
//   - "failed" — операция отклонена (валидация, авторизация и т.д.).
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// UserPayload — представление пользователя в HTTP API.
//
// Используется и сервером (в ответах), и CLI-клиентом (при разборе ответов).
// Хэш пароля сюда не попадает никогда: модель собирается вручную в api слое.
//
// Поля:
//   - ID: уникальный идентификатор пользователя (UUID в виде строки)
//   - Name: отображаемое имя
//   - Email: email (уникален среди всех пользователей)
//   - CreatedAt: время регистрации (серверное)
type UserPayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthData — полезная нагрузка успешной регистрации/логина.
//
// Содержит выданный bearer-токен и данные пользователя.
type AuthData struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

// AuthResponse — ответ эндпоинтов регистрации и логина.
//
// Используется в:
//
//	POST /v1/register (201)
//	POST /v1/login    (200)
//
// Формат:
//
//	{"status":"success","message":"...","data":{"token":"...","user":{...}}}
type AuthResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Data    AuthData `json:"data"`
}

// UserResponse — ответ эндпоинта получения текущего пользователя.
//
// Используется в:
//
//	GET /v1/user (200)
type UserResponse struct {
	User UserPayload `json:"user"`
}

// ErrorResponse — ответ при отклонённой операции.
//
// Используется для 401/422/400/500. Errors заполняется только для 422
// (ошибки валидации по полям), в остальных случаях опускается.
type ErrorResponse struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}
