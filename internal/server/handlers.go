package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"FilterTok/internal/analysis"
	"FilterTok/internal/config"
	"FilterTok/internal/metrics"
)

// Metric labels for requests not served by a registered analyzer.
const (
	adHocAnalyzer   = "_adhoc"
	unknownAnalyzer = "_unknown"
)

// jsonOverhead bounds how much larger than the text itself a request body may be.
// JSON escaping can expand a single byte to six.
const jsonOverhead = 6

// Handler holds HTTP handlers for the tokenize API.
type Handler struct {
	registry     *analysis.Registry
	metrics      *metrics.TokenizeMetrics
	maxTextBytes int
	logger       *slog.Logger
}

// NewHandler creates a new Handler serving the analyzers in registry.
func NewHandler(registry *analysis.Registry, m *metrics.TokenizeMetrics, maxTextBytes int, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if m == nil {
		m = metrics.NewTokenizeMetrics(nil)
	}
	return &Handler{
		registry:     registry,
		metrics:      m,
		maxTextBytes: maxTextBytes,
		logger:       logger,
	}
}

// RegisterRoutes registers all API routes on the given router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/analyzers", h.handleListAnalyzers).Methods(http.MethodGet)
	r.HandleFunc("/analyzers/{name}/tokenize", h.handleTokenize).Methods(http.MethodPost)
	r.HandleFunc("/tokenize", h.handleTokenizeAdHoc).Methods(http.MethodPost)
}

func (h *Handler) handleListAnalyzers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"analyzers": h.registry.Names(),
	})
}

type tokenizeRequest struct {
	Field string `json:"field"`
	Text  string `json:"text"`
}

type tokenizeResponse struct {
	Analyzer string           `json:"analyzer"`
	Count    int              `json:"count"`
	TookUS   int64            `json:"took_us"`
	Tokens   []analysis.Token `json:"tokens"`
}

func (h *Handler) handleTokenize(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	a, err := h.registry.Get(name)
	if err != nil {
		if errors.Is(err, analysis.ErrAnalyzerNotFound) {
			h.fail(w, r, unknownAnalyzer, http.StatusNotFound, err.Error())
			return
		}
		h.fail(w, r, name, http.StatusInternalServerError, err.Error())
		return
	}

	var req tokenizeRequest
	if status, err := h.decode(w, r, &req); err != nil {
		h.fail(w, r, name, status, err.Error())
		return
	}
	if len(req.Text) > h.maxTextBytes {
		h.fail(w, r, name, http.StatusRequestEntityTooLarge, h.tooLarge())
		return
	}

	h.respond(w, r, name, req.Text, func() []analysis.Token {
		return a.Analyze(req.Field, req.Text)
	})
}

type adHocRequest struct {
	Text string `json:"text"`
	Type string `json:"type"`
	Keep string `json:"keep"`
	Drop string `json:"drop"`
}

func (h *Handler) handleTokenizeAdHoc(w http.ResponseWriter, r *http.Request) {
	var req adHocRequest
	if status, err := h.decode(w, r, &req); err != nil {
		h.fail(w, r, adHocAnalyzer, status, err.Error())
		return
	}
	if len(req.Text) > h.maxTextBytes {
		h.fail(w, r, adHocAnalyzer, http.StatusRequestEntityTooLarge, h.tooLarge())
		return
	}
	if req.Type == "" {
		req.Type = config.FilterTypeSet
	}

	def := config.AnalyzerDef{Name: adHocAnalyzer, Type: req.Type, Keep: req.Keep, Drop: req.Drop}
	f, err := def.Filter()
	if err != nil {
		h.fail(w, r, adHocAnalyzer, http.StatusBadRequest, err.Error())
		return
	}

	h.respond(w, r, adHocAnalyzer, req.Text, func() []analysis.Token {
		return analysis.Tokenize(f, req.Text)
	})
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, analyzer, text string, tokenize func() []analysis.Token) {
	start := time.Now()
	tokens := tokenize()
	took := time.Since(start)

	if tokens == nil {
		tokens = []analysis.Token{}
	}
	h.metrics.ObserveTokenize(analyzer, utf8.RuneCountInString(text), len(tokens), took)
	h.metrics.IncRequest(analyzer, http.StatusOK)

	h.logger.Debug("tokenized",
		"request_id", RequestID(r.Context()),
		"analyzer", analyzer,
		"bytes", len(text),
		"tokens", len(tokens),
		"duration", took,
	)

	writeJSON(w, http.StatusOK, tokenizeResponse{
		Analyzer: analyzer,
		Count:    len(tokens),
		TookUS:   took.Microseconds(),
		Tokens:   tokens,
	})
}

// decode reads a JSON body into v, returning the HTTP status to report on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) (int, error) {
	body := http.MaxBytesReader(w, r.Body, int64(h.maxTextBytes)*jsonOverhead+4096)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return http.StatusRequestEntityTooLarge, errors.New(h.tooLarge())
		}
		return http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err)
	}
	return 0, nil
}

func (h *Handler) tooLarge() string {
	return fmt.Sprintf("text exceeds %d bytes", h.maxTextBytes)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, analyzer string, status int, message string) {
	h.metrics.IncRequest(analyzer, status)
	h.logger.Warn("tokenize request failed",
		"request_id", RequestID(r.Context()),
		"analyzer", analyzer,
		"status", status,
		"error", message,
	)
	writeError(w, status, message)
}
