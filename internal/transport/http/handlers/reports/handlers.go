package reportshandler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"dezporcento/internal/domain/notify"
	"dezporcento/internal/domain/records"
	"dezporcento/internal/domain/report"
	"dezporcento/internal/transport/http/api"
	"dezporcento/internal/transport/http/middleware"
	"dezporcento/internal/transport/http/shared"
)

type Handler struct {
	Records    *records.Service
	Dispatcher *notify.Dispatcher
	Weekdays   [7]string
}

func NewHandler(service *records.Service, dispatcher *notify.Dispatcher, weekdays [7]string) *Handler {
	return &Handler{Records: service, Dispatcher: dispatcher, Weekdays: weekdays}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/daily", h.handleDaily)
		r.Get("/daily/all", h.handleDailyAll)
		r.Post("/send", h.handleSend)
	})
}

// rendererFor assembles the day's renderer: that day's records, the
// weekday label and the general note, if any.
func (h *Handler) rendererFor(r *http.Request, day time.Time) *report.Renderer {
	input := h.Records.ListByDate(r.Context(), day)
	noteText := ""
	if note := h.Records.GeneralNote(r.Context(), day); note != nil {
		noteText = note.Note
	}
	return report.NewRenderer(input, day, report.WeekdayLabel(h.Weekdays, day), noteText)
}

func (h *Handler) handleDaily(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	day, err := shared.ParseDate(r.URL.Query().Get("date"))
	if err != nil || day.IsZero() {
		api.Fail(w, http.StatusBadRequest, "bad_request", "date is required", reqID)
		return
	}
	format, err := report.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", err.Error(), reqID)
		return
	}

	renderer := h.rendererFor(r, day)
	content, err := renderer.Render(format)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "render_failed", err.Error(), reqID)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+renderer.Filename(format)+`"`)
	_, _ = w.Write(content)
}

func (h *Handler) handleDailyAll(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	day, err := shared.ParseDate(r.URL.Query().Get("date"))
	if err != nil || day.IsZero() {
		api.Fail(w, http.StatusBadRequest, "bad_request", "date is required", reqID)
		return
	}

	renderer := h.rendererFor(r, day)
	artifacts, err := renderer.GenerateAll()
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "render_failed", err.Error(), reqID)
		return
	}

	files := make(map[string]string, len(artifacts))
	for format, content := range artifacts {
		files[renderer.Filename(format)] = base64.StdEncoding.EncodeToString(content)
	}
	api.Success(w, files, reqID)
}

func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload struct {
		Date      string `json:"date"`
		Recipient string `json:"recipient"`
		Attach    *bool  `json:"attach"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid json body", reqID)
		return
	}
	day, err := shared.ParseDate(payload.Date)
	if err != nil || day.IsZero() {
		api.Fail(w, http.StatusBadRequest, "bad_request", "date must be YYYY-MM-DD", reqID)
		return
	}

	renderer := h.rendererFor(r, day)

	var attachments map[report.Format][]byte
	if payload.Attach == nil || *payload.Attach {
		attachments, err = renderer.GenerateAll()
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "render_failed", err.Error(), reqID)
			return
		}
	}

	err = h.Dispatcher.SendDailyReport(
		r.Context(), renderer.Records, day, renderer.Weekday,
		payload.Recipient, attachments, renderer.Note,
	)
	if err != nil {
		api.Fail(w, http.StatusBadGateway, "send_failed", err.Error(), reqID)
		return
	}
	api.Success(w, map[string]bool{"sent": true}, reqID)
}
