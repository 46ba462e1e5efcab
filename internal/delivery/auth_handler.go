package delivery

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/vidbrief/internal/domain"
	"github.com/Vovarama1992/vidbrief/internal/ports"
)

type AuthHandler struct {
	auth ports.AuthService
	log  *logger.ZapLogger
}

func NewAuthHandler(auth ports.AuthService, log *logger.ZapLogger) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		log:  log,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid json")
		return
	}

	token, err := h.auth.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			writeJSONError(w, http.StatusConflict, err.Error())
			return
		}
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "user registered",
	})

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid json")
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeJSONError(w, http.StatusUnauthorized, err.Error())
			return
		}
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "login failed",
			Error:   err,
		})
		writeJSONError(w, http.StatusInternalServerError, "login failed")
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "login success",
	})

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
