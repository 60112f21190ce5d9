package statshandler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"dezporcento/internal/domain/records"
	"dezporcento/internal/domain/stats"
	"dezporcento/internal/transport/http/api"
	"dezporcento/internal/transport/http/middleware"
)

const defaultHistoryLimit = 100

type Handler struct {
	Records *records.Service
}

func NewHandler(service *records.Service) *Handler {
	return &Handler{Records: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/stats", func(r chi.Router) {
		r.Get("/ranking", h.handleRanking)
		r.Get("/attendance", h.handleAttendance)
		r.Get("/payments", h.handlePayments)
		r.Get("/registration", h.handleRegistration)
		r.Get("/totals", h.handleTotals)
	})
	r.Get("/deliveries", h.handleDeliveries)
}

func (h *Handler) handleRanking(w http.ResponseWriter, r *http.Request) {
	input := h.Records.ListAll(r.Context())
	api.Success(w, stats.Ranking(input), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAttendance(w http.ResponseWriter, r *http.Request) {
	input := h.Records.ListAll(r.Context())
	api.Success(w, stats.AttendanceHistory(input, limitParam(r)), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePayments(w http.ResponseWriter, r *http.Request) {
	input := h.Records.ListAll(r.Context())
	query := r.URL.Query().Get("name")
	api.Success(w, stats.PaymentHistoryByName(input, limitParam(r), query), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRegistration(w http.ResponseWriter, r *http.Request) {
	input := h.Records.ListAll(r.Context())
	api.Success(w, stats.RegistrationSummary(input), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTotals(w http.ResponseWriter, r *http.Request) {
	input := h.Records.ListAll(r.Context())
	api.Success(w, stats.GrandTotals(input), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeliveries(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Records.ListDeliveries(r.Context()), middleware.GetRequestID(r.Context()))
}

func limitParam(r *http.Request) int {
	value := r.URL.Query().Get("limit")
	if value == "" {
		return defaultHistoryLimit
	}
	limit, err := strconv.Atoi(value)
	if err != nil || limit < 0 {
		return defaultHistoryLimit
	}
	return limit
}
