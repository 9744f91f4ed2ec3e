package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-auth-service/internal/agent/api"
	"github.com/IvanChernomyrdin/go-auth-service/internal/shared/models"
)

// Регистрация: тело уходит как JSON, ответ парсится в конверт
func TestClient_Register(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/register" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type: %q", ct)
		}

		var req api.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Name != "Ann" || req.Email != "ann@mail.com" || req.Password != "password123" {
			t.Fatalf("unexpected request body: %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.AuthResponse{
			Status:  models.StatusSuccess,
			Message: "User registered successfully.",
			Data: models.AuthData{
				Token: "issued-token",
				User:  models.UserPayload{ID: "42", Name: "Ann", Email: "ann@mail.com"},
			},
		})
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)

	resp, err := client.Register("Ann", "ann@mail.com", "password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != models.StatusSuccess {
		t.Fatalf("unexpected status: %q", resp.Status)
	}
	if resp.Data.Token != "issued-token" {
		t.Fatalf("unexpected token: %q", resp.Data.Token)
	}
	if resp.Data.User.Email != "ann@mail.com" {
		t.Fatalf("unexpected user: %+v", resp.Data.User)
	}
}

// Логин ок
func TestClient_Login(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var req api.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Email != "ann@mail.com" || req.Password != "password123" {
			t.Fatalf("unexpected request body: %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.AuthResponse{
			Status:  models.StatusSuccess,
			Message: "Login successful.",
			Data:    models.AuthData{Token: "fresh-token"},
		})
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)

	resp, err := client.Login("ann@mail.com", "password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Data.Token != "fresh-token" {
		t.Fatalf("unexpected token: %q", resp.Data.Token)
	}
}

// Логин: 401 превращается в ошибку с телом ответа
func TestClient_Login_Unauthorized(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":"failed","message":"Unauthorized"}`))
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)

	_, err := client.Login("ann@mail.com", "wrong-password")
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if !strings.Contains(err.Error(), "Unauthorized") {
		t.Fatalf("expected error to contain server message, got %q", err.Error())
	}
}

// Me: токен уходит в Authorization
func TestClient_Me(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v1/user" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer saved-token" {
			t.Fatalf("unexpected authorization header: %q", auth)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.UserResponse{
			User: models.UserPayload{ID: "42", Name: "Ann", Email: "ann@mail.com"},
		})
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)

	resp, err := client.Me("saved-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.User.ID != "42" || resp.User.Name != "Ann" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
}

// Me без токена: сервер отвечает 401
func TestClient_Me_NoToken(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Fatalf("expected no authorization header, got %q", auth)
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":"failed","message":"Unauthorized"}`))
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)

	if _, err := client.Me(""); err == nil {
		t.Fatal("expected error for 401 response")
	}
}
