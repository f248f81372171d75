package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/hlog"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type (
	Router struct {
		service servicer
	}
)

func NewRouter(service servicer) chi.Router {
	router := &Router{service: service}
	return router.Routes()
}

func (r *Router) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/login", r.HandleLogin)
	router.Post("/reset-password", r.HandleResetPassword)
	router.Post("/verify-otp", r.HandleVerifyOTP)
	return router
}

func (r *Router) HandleLogin(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	var in LoginIn
	if !decodeAndValidate(w, req, &in) {
		return
	}

	logger.Debug().Str("email", in.Email).Msg("Login attempt")

	out, err := r.service.Login(ctx, in)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			logger.Warn().Str("email", in.Email).Msg("Login failed: invalid credentials")
			writeJSON(w, http.StatusUnauthorized, MessageOut{Message: "Invalid credentials"})
			return
		}
		logger.Error().Err(err).Str("email", in.Email).Msg("Login failed")
		writeJSON(w, http.StatusInternalServerError, MessageOut{Message: "Internal server error"})
		return
	}

	logger.Debug().Str("email", in.Email).Str("user_id", out.User.ID).Msg("Login successful")
	writeJSON(w, http.StatusOK, out)
}

func (r *Router) HandleResetPassword(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	var in ResetPasswordIn
	if !decodeAndValidate(w, req, &in) {
		return
	}

	out, err := r.service.RequestReset(ctx, in)
	if err != nil {
		logger.Error().Err(err).Str("email", in.Email).Msg("Reset password failed")
		writeJSON(w, http.StatusInternalServerError, MessageOut{Message: "Internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func (r *Router) HandleVerifyOTP(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	var in VerifyOTPIn
	if !decodeAndValidate(w, req, &in) {
		return
	}

	out, err := r.service.VerifyOTP(ctx, in)
	if err != nil {
		if errors.Is(err, ErrInvalidCode) {
			logger.Warn().Str("email", in.Email).Msg("OTP verification failed")
			writeJSON(w, http.StatusBadRequest, MessageOut{Message: "Invalid or expired code"})
			return
		}
		logger.Error().Err(err).Str("email", in.Email).Msg("OTP verification failed")
		writeJSON(w, http.StatusInternalServerError, MessageOut{Message: "Internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, out)
}

// decodeAndValidate binds the JSON body into in and runs struct validation,
// answering 400 with a message body itself when either step fails.
func decodeAndValidate(w http.ResponseWriter, req *http.Request, in any) bool {
	if err := json.NewDecoder(req.Body).Decode(in); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageOut{Message: "Invalid request body"})
		return false
	}
	if err := validate.Struct(in); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageOut{Message: "Invalid request: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
