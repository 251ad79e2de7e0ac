// File: internal/handlers/auth_handlers.go
package handlers

import (
	"net/http"

	"github.com/gestorai/gestorai/internal/dtos"
	"github.com/gestorai/gestorai/internal/services/user_services"
)

// AuthHandler holds the dependencies for authentication handlers.
type AuthHandler struct {
	authService *user_services.AuthService
	logger      Logger
}

func NewAuthHandler(authService *user_services.AuthService, logger Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// registerRequest also accepts the Portuguese field names older clients send.
type registerRequest struct {
	dtos.RegisterRequestDTO
	NomeCompleto string `json:"nomeCompleto"`
	Senha        string `json:"senha"`
	RepitaSenha  string `json:"repitaSenha"`
}

func (r registerRequest) normalized() dtos.RegisterRequestDTO {
	out := r.RegisterRequestDTO
	if out.Name == "" {
		out.Name = r.NomeCompleto
	}
	if out.Password == "" {
		out.Password = r.Senha
	}
	if out.ConfirmPassword == "" {
		out.ConfirmPassword = r.RepitaSenha
	}
	return out
}

type loginRequest struct {
	dtos.LoginRequestDTO
	Senha string `json:"senha"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, "O corpo da requisição não é um JSON válido.", http.StatusBadRequest)
		return
	}

	created, err := h.authService.Register(r.Context(), req.normalized())
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Usuário cadastrado com sucesso!",
		"user":    dtos.ToUserResponse(created),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, "O corpo da requisição não é um JSON válido.", http.StatusBadRequest)
		return
	}
	password := req.Password
	if password == "" {
		password = req.Senha
	}

	_, token, err := h.authService.Login(r.Context(), req.Email, password)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Login bem-sucedido!",
		"token":   token,
	})
}
