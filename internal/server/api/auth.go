// HTTP-хендлеры регистрации, логина и получения текущего пользователя
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/IvanChernomyrdin/go-auth-service/internal/server/middleware"
	serr "github.com/IvanChernomyrdin/go-auth-service/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-auth-service/internal/shared/models"
)

// RegisterRequest описывает тело запроса регистрации пользователя.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register обрабатывает регистрацию пользователя.
//
// @Summary      Register a new user
// @Description  Registers a new user and issues a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Register request"
// @Success      201 {object} models.AuthResponse
// @Failure      400 {object} models.ErrorResponse "Bad JSON"
// @Failure      422 {object} models.ErrorResponse "Validation error (field details in errors)"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /v1/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteFailure(w, http.StatusBadRequest, serr.ErrBadJSON.Error(), nil)
		return
	}

	user, token, err := h.Svc.Auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		var vErr *serr.ValidationError
		switch {
		case errors.As(err, &vErr):
			WriteFailure(w, http.StatusUnprocessableEntity, "The given data was invalid.", vErr.Fields)
		default:
			h.Log.Logger.Sugar().Error("register failed")
			WriteFailure(w, http.StatusInternalServerError, serr.ErrInternal.Error(), nil)
		}
		return
	}

	writeJSON(w, http.StatusCreated, models.AuthResponse{
		Status:  models.StatusSuccess,
		Message: "User registered successfully.",
		Data: models.AuthData{
			Token: token,
			User:  userPayload(user),
		},
	})
}

// Login обрабатывает вход пользователя и выдачу нового токена.
//
// Неизвестный email и неверный пароль дают одинаковый 401 —
// какая именно половина учётных данных не подошла, наружу не отдаём.
//
// @Summary      Login a user
// @Description  Authenticates a user and issues a fresh bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} models.AuthResponse
// @Failure      400 {object} models.ErrorResponse "Bad JSON"
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /v1/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteFailure(w, http.StatusBadRequest, serr.ErrBadJSON.Error(), nil)
		return
	}

	user, token, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidCredentials):
			WriteFailure(w, http.StatusUnauthorized, "Unauthorized", nil)
		default:
			h.Log.Logger.Sugar().Error("login failed")
			WriteFailure(w, http.StatusInternalServerError, serr.ErrInternal.Error(), nil)
		}
		return
	}

	writeJSON(w, http.StatusOK, models.AuthResponse{
		Status:  models.StatusSuccess,
		Message: "Login successful.",
		Data: models.AuthData{
			Token: token,
			User:  userPayload(user),
		},
	})
}

// GetUser возвращает пользователя, которому принадлежит предъявленный токен.
//
// @Summary      Get authenticated user
// @Description  Returns the user bound to the presented bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.UserResponse
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /v1/user [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := middleware.TokenIDFromContext(r.Context())
	if !ok {
		WriteFailure(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	user, err := h.Svc.Auth.Whoami(r.Context(), tokenID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrUnauthorized):
			WriteFailure(w, http.StatusUnauthorized, "Unauthorized", nil)
		default:
			h.Log.Logger.Sugar().Error("get user failed")
			WriteFailure(w, http.StatusInternalServerError, serr.ErrInternal.Error(), nil)
		}
		return
	}

	writeJSON(w, http.StatusOK, models.UserResponse{User: userPayload(user)})
}
