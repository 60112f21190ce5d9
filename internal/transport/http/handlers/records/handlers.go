package recordshandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"dezporcento/internal/domain/records"
	"dezporcento/internal/domain/report"
	"dezporcento/internal/transport/http/api"
	"dezporcento/internal/transport/http/middleware"
	"dezporcento/internal/transport/http/shared"
)

type Handler struct {
	Records *records.Service
}

func NewHandler(service *records.Service) *Handler {
	return &Handler{Records: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/records", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleUpsert)
		r.Get("/names", h.handleNames)
		r.Get("/lookup", h.handleLookup)
		r.Get("/{id}/receipt", h.handleReceipt)
		r.Delete("/{id}", h.handleDelete)
	})
	r.Route("/notes", func(r chi.Router) {
		r.Get("/", h.handleGetNote)
		r.Put("/", h.handleSaveNote)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		api.Success(w, h.Records.ListAll(r.Context()), reqID)
		return
	}
	date, err := shared.ParseDate(rawDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "date must be YYYY-MM-DD", reqID)
		return
	}
	api.Success(w, h.Records.ListByDate(r.Context(), date), reqID)
}

func (h *Handler) handleUpsert(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload struct {
		records.WorkRecord
		WorkDate string `json:"dia_trabalho"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid json body", reqID)
		return
	}

	record := payload.WorkRecord
	if payload.WorkDate != "" {
		date, err := shared.ParseDate(payload.WorkDate)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "bad_request", "dia_trabalho must be YYYY-MM-DD", reqID)
			return
		}
		record.WorkDate = &date
	}

	// Re-registering the same employee and day updates in place instead
	// of inserting a duplicate row.
	if record.ID == "" && record.WorkDate != nil {
		if existing := h.Records.FindByNameAndDate(r.Context(), record.EmployeeName, *record.WorkDate); existing != nil {
			record.ID = existing.ID
		}
	}

	saved, err := h.Records.Upsert(r.Context(), record)
	if err != nil {
		api.Fail(w, http.StatusUnprocessableEntity, "save_failed", err.Error(), reqID)
		return
	}
	api.Created(w, saved, reqID)
}

func (h *Handler) handleNames(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Records.DistinctNames(r.Context()), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	name := r.URL.Query().Get("name")
	date, err := shared.ParseDate(r.URL.Query().Get("date"))
	if err != nil || name == "" || date.IsZero() {
		api.Fail(w, http.StatusBadRequest, "bad_request", "name and date are required", reqID)
		return
	}
	record := h.Records.FindByNameAndDate(r.Context(), name, date)
	if record == nil {
		api.Fail(w, http.StatusNotFound, "not_found", "no record for that employee and day", reqID)
		return
	}
	api.Success(w, record, reqID)
}

func (h *Handler) handleReceipt(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	record := h.Records.GetByID(r.Context(), chi.URLParam(r, "id"))
	if record == nil {
		api.Fail(w, http.StatusNotFound, "not_found", "record not found", reqID)
		return
	}
	content, err := report.ReceiptPDF(*record, time.Now())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "render_failed", err.Error(), reqID)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="recibo_`+record.ID+`.pdf"`)
	_, _ = w.Write(content)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	deleted, err := h.Records.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "delete_failed", err.Error(), reqID)
		return
	}
	if !deleted {
		api.Fail(w, http.StatusNotFound, "not_found", "record not found", reqID)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, reqID)
}

func (h *Handler) handleGetNote(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	date, err := shared.ParseDate(r.URL.Query().Get("date"))
	if err != nil || date.IsZero() {
		api.Fail(w, http.StatusBadRequest, "bad_request", "date is required", reqID)
		return
	}
	note := h.Records.GeneralNote(r.Context(), date)
	if note == nil {
		api.Fail(w, http.StatusNotFound, "not_found", "no note for that day", reqID)
		return
	}
	api.Success(w, note, reqID)
}

func (h *Handler) handleSaveNote(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload struct {
		WorkDate string `json:"dia_trabalho"`
		Note     string `json:"observacao"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid json body", reqID)
		return
	}
	date, err := shared.ParseDate(payload.WorkDate)
	if err != nil || date.IsZero() {
		api.Fail(w, http.StatusBadRequest, "bad_request", "dia_trabalho must be YYYY-MM-DD", reqID)
		return
	}

	saved, err := h.Records.SaveGeneralNote(r.Context(), records.GeneralNote{WorkDate: &date, Note: payload.Note})
	if err != nil {
		api.Fail(w, http.StatusUnprocessableEntity, "save_failed", err.Error(), reqID)
		return
	}
	api.Success(w, saved, reqID)
}
