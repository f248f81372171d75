package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"

	"github.com/bitebranch/ordering/internal/shared/middleware"
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
	router.Post("/", r.SubmitOrder)
	router.Post("/quote", r.QuoteOrder)
	router.Get("/{id}", r.GetOrder)
	return router
}

// QuoteOrder computes the review-screen summary for a cart.
func (r *Router) QuoteOrder(w http.ResponseWriter, req *http.Request) {
	var in QuoteIn
	if !decodeAndValidate(w, req, &in) {
		return
	}

	writeJSON(w, http.StatusOK, r.service.Quote(req.Context(), in))
}

func (r *Router) SubmitOrder(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	claims := middleware.GetClaims(ctx)
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, errorOut{Message: "Invalid or expired token"})
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorOut{Message: "Invalid or expired token"})
		return
	}

	var in SubmitOrderIn
	if !decodeAndValidate(w, req, &in) {
		return
	}

	out, err := r.service.Submit(ctx, userID, claims.BranchID, in)
	if err != nil {
		logger.Error().Err(err).Str("user_id", claims.UserID).Msg("Order submission failed")
		writeJSON(w, http.StatusInternalServerError, errorOut{Message: "Internal server error"})
		return
	}

	logger.Debug().Str("order_id", out.ID).Msg("Order created")
	writeJSON(w, http.StatusCreated, out)
}

func (r *Router) GetOrder(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	claims := middleware.GetClaims(ctx)
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, errorOut{Message: "Invalid or expired token"})
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorOut{Message: "Invalid or expired token"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(req, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorOut{Message: "Order not found"})
		return
	}

	o, err := r.service.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorOut{Message: "Order not found"})
			return
		}
		logger.Error().Err(err).Str("order_id", id.String()).Msg("Order lookup failed")
		writeJSON(w, http.StatusInternalServerError, errorOut{Message: "Internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, o)
}

type errorOut struct {
	Message string `json:"message"`
}

func decodeAndValidate(w http.ResponseWriter, req *http.Request, in any) bool {
	if err := json.NewDecoder(req.Body).Decode(in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorOut{Message: "Invalid request body"})
		return false
	}
	if err := validate.Struct(in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorOut{Message: "Invalid request: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
