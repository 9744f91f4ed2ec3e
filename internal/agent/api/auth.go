package api

import (
	"github.com/IvanChernomyrdin/go-auth-service/internal/shared/models"
)

// RegisterRequest — тело запроса POST /v1/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest — тело запроса POST /v1/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register регистрирует нового пользователя и возвращает ответ сервера
// (токен + данные пользователя).
func (c *Client) Register(name, email, password string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.PostJSON("/v1/register", RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, &resp, "")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login выполняет вход и возвращает ответ сервера с новым токеном.
func (c *Client) Login(email, password string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.PostJSON("/v1/login", LoginRequest{
		Email:    email,
		Password: password,
	}, &resp, "")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me возвращает пользователя, привязанного к токену.
func (c *Client) Me(authToken string) (*models.UserResponse, error) {
	var resp models.UserResponse
	if err := c.GetJSON("/v1/user", &resp, authToken); err != nil {
		return nil, err
	}
	return &resp, nil
}
