// Package api реализует HTTP-слой сервера.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - подключение middleware (логирование, проверка bearer-токенов).
package api

import (
	"encoding/json"
	"net/http"

	"github.com/IvanChernomyrdin/go-auth-service/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-auth-service/internal/server/models"
	"github.com/IvanChernomyrdin/go-auth-service/internal/server/service"
	"github.com/IvanChernomyrdin/go-auth-service/internal/shared/logger"
	sharedmodels "github.com/IvanChernomyrdin/go-auth-service/internal/shared/models"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: компонент проверки bearer-токенов и middleware авторизации.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.TokenVerifier
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// svc — набор сервисов приложения,
// log — логгер,
// verifier — проверка bearer-токенов и middleware авторизации.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.TokenVerifier) *Handler {
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,
	}
}

// writeJSON сериализует ответ с нужным статусом.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// WriteFailure выводит ошибку в общем формате API.
func WriteFailure(w http.ResponseWriter, status int, message string, fields map[string][]string) {
	writeJSON(w, status, sharedmodels.ErrorResponse{
		Status:  sharedmodels.StatusFailed,
		Message: message,
		Errors:  fields,
	})
}

// userPayload собирает наружное представление пользователя.
// Хэш пароля сюда не попадает.
func userPayload(u models.User) sharedmodels.UserPayload {
	return sharedmodels.UserPayload{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
