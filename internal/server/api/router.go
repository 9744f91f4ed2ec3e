package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-auth-service/internal/server/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты регистрации и логина под префиксом /v1;
//   - middleware логирования для всех запросов;
//   - защищённый bearer-токеном эндпоинт текущего пользователя.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/v1", func(r chi.Router) {
		// Публичные пути
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		// защищённые пути
		r.Group(func(r chi.Router) {
			// проверка bearer-токена
			r.Use(h.Verifier.AuthMiddleware())
			r.Get("/user", h.GetUser)
		})
	})

	return r
}
