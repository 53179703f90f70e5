package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/alexiusacademia/goinertia/internal/diagram"
	"github.com/alexiusacademia/goinertia/internal/figure"
	"github.com/alexiusacademia/goinertia/internal/report"
	"github.com/alexiusacademia/goinertia/internal/section"
	"github.com/alexiusacademia/goinertia/internal/version"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ComputeResponse is the body of a successful compute request.
type ComputeResponse struct {
	Name   string                `json:"name,omitempty"`
	Result section.Result        `json:"result"`
	Check  *section.OutlineCheck `json:"check,omitempty"`
}

type Handler struct {
	config Config
	logger zerolog.Logger
}

func NewHandler(config Config, logger zerolog.Logger) *Handler {
	return &Handler{config: config, logger: logger}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

// computed holds a built section and its result for the renderers.
type computed struct {
	def     *section.Definition
	figures []figure.Figure
	result  section.Result
}

func (h *Handler) compute(w http.ResponseWriter, r *http.Request) (*computed, bool) {
	logger := zerolog.Ctx(r.Context())

	def, err := section.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes), "json")
	if err != nil {
		if errors.Is(err, figure.ErrInvalidParameter) {
			writeError(w, r, http.StatusBadRequest, "invalid_parameter", "invalid figure parameter", err)
		} else {
			writeError(w, r, http.StatusBadRequest, "invalid_definition", "invalid section definition", err)
		}
		return nil, false
	}

	sec, err := def.Build()
	if err != nil {
		writeComputeError(w, r, err)
		return nil, false
	}

	res, err := sec.Compute(section.WithLogger(*logger))
	if err != nil {
		writeComputeError(w, r, err)
		return nil, false
	}

	logger.Debug().
		Str("section", def.Name).
		Int("figures", sec.Len()).
		Float64("area", res.Area).
		Msg("section computed")

	return &computed{def: def, figures: sec.Figures(), result: res}, true
}

func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	c, ok := h.compute(w, r)
	if !ok {
		return
	}

	resp := ComputeResponse{Name: c.def.Name, Result: c.result}
	if queryBool(r, "check") {
		chk, err := section.CheckOutlines(c.figures, c.result, figure.DefaultSegments)
		if err != nil {
			writeComputeError(w, r, err)
			return
		}
		resp.Check = &chk
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	c, ok := h.compute(w, r)
	if !ok {
		return
	}

	png, err := diagram.RenderPNG(c.figures, c.result, h.plotOptions(c.def))
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal", "failed to render diagram", err)
		return
	}

	title := r.URL.Query().Get("title")
	if title == "" {
		title = h.config.ReportTitle
	}
	pdf, err := report.Bytes(c.result, report.Options{
		Title:   title,
		Author:  h.config.ReportAuthor,
		Section: c.def.Name,
		Angles:  angles(r),
		Diagram: png,
		Date:    time.Now(),
	})
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal", "failed to build report", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	h.writeBody(w, r, pdf)
}

func (h *Handler) Diagram(w http.ResponseWriter, r *http.Request) {
	c, ok := h.compute(w, r)
	if !ok {
		return
	}

	png, err := diagram.RenderPNG(c.figures, c.result, h.plotOptions(c.def))
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal", "failed to render diagram", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	h.writeBody(w, r, png)
}

func (h *Handler) plotOptions(def *section.Definition) diagram.PlotOptions {
	return diagram.PlotOptions{
		Title:  def.Name,
		Width:  h.config.DiagramWidth,
		Height: h.config.DiagramHeight,
	}
}

func (h *Handler) writeBody(w http.ResponseWriter, r *http.Request, body []byte) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to write response")
	}
}

func angles(r *http.Request) string {
	if strings.EqualFold(r.URL.Query().Get("angles"), section.AnglesClockwise) {
		return section.AnglesClockwise
	}
	return section.AnglesMath
}

func queryBool(r *http.Request, key string) bool {
	switch strings.ToLower(r.URL.Query().Get(key)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func writeComputeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *section.ValidationError
	switch {
	case errors.Is(err, figure.ErrInvalidParameter):
		writeError(w, r, http.StatusBadRequest, "invalid_parameter", "invalid figure parameter", err)
	case errors.As(err, &verr):
		writeError(w, r, http.StatusBadRequest, "invalid_definition", "invalid section definition", err)
	case errors.Is(err, section.ErrEmptyInput):
		writeError(w, r, http.StatusBadRequest, "empty_section", "the section has no figures", err)
	case errors.Is(err, section.ErrDegenerateSection):
		writeError(w, r, http.StatusBadRequest, "degenerate_section", "the total area of the section is zero", err)
	default:
		writeError(w, r, http.StatusInternalServerError, "internal", "computation failed", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	logger := zerolog.Ctx(r.Context())
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).Str("code", code).Msg(message)

	resp := ErrorResponse{Code: code, Message: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, r, status, resp)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msgf("failed to encode %T", v)
	}
}
