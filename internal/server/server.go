package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/iwvelando/youth-budget/internal/budget"
	"github.com/iwvelando/youth-budget/internal/config"
	"github.com/iwvelando/youth-budget/internal/planner"
	"github.com/iwvelando/youth-budget/pkg/coerce"
	"github.com/iwvelando/youth-budget/pkg/constants"
	"github.com/iwvelando/youth-budget/pkg/format"
	"github.com/iwvelando/youth-budget/pkg/validation"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the web UI and estimate API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Default program and rates for a fresh form
	mux.HandleFunc("/api/defaults", h.handleDefaults)

	// Full recompute from a posted program and rate table
	mux.HandleFunc("/api/estimate", h.handleEstimate)

	// Single field edit applied on top of a posted program and rate table
	mux.HandleFunc("/api/update", h.handleUpdate)

	// YAML config for the posted program and rates
	mux.HandleFunc("/api/export", h.handleExport)

	// Largest participant count for a budget ceiling
	mux.HandleFunc("/api/capacity", h.handleCapacity)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/", http.FileServer(http.FS(sub)))

	return mux
}

// estimateRequest carries loosely typed field values. Each value goes through
// Session.Set, so text that does not parse becomes zero instead of failing.
type estimateRequest struct {
	Program map[string]interface{} `json:"program"`
	Rates   map[string]interface{} `json:"rates"`
}

type updateRequest struct {
	estimateRequest
	Field string      `json:"field"`
	Value interface{} `json:"value"`
}

type capacityRequest struct {
	estimateRequest
	Ceiling interface{} `json:"ceiling"`
	Limit   interface{} `json:"limit"`
}

type reportResponse struct {
	budget.Report
	Formatted formattedCosts `json:"formatted"`
	Warnings  []string       `json:"warnings,omitempty"`
	Duration  string         `json:"duration"`
}

type formattedCosts struct {
	Staffing  string `json:"staffing"`
	Food      string `json:"food"`
	Equipment string `json:"equipment"`
	Transport string `json:"transport"`
	Total     string `json:"total"`
}

type defaultsResponse struct {
	Program budget.Program `json:"program"`
	Rates   budget.Rates   `json:"rates"`
	Fields  []string       `json:"fields"`
}

func (h *handler) handleDefaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, defaultsResponse{
		Program: budget.DefaultProgram(),
		Rates:   budget.DefaultRates(),
		Fields:  budget.Fields(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleEstimate"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	var req estimateRequest
	if !h.decode(w, r, &req, op) {
		return
	}

	session, err := h.sessionFrom(req)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondReport(w, session, start, op)
}

func (h *handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleUpdate"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	var req updateRequest
	if !h.decode(w, r, &req, op) {
		return
	}
	if strings.TrimSpace(req.Field) == "" {
		h.respondErrorWithOp(w, http.StatusBadRequest, "missing field name", op)
		return
	}

	session, err := h.sessionFrom(req.estimateRequest)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	if err := session.Set(req.Field, cast.ToString(req.Value)); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondReport(w, session, start, op)
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleExport"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req estimateRequest
	if !h.decode(w, r, &req, op) {
		return
	}

	session, err := h.sessionFrom(req)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	conf := config.Configuration{Program: session.Program(), Rates: session.Rates()}
	yamlBytes, err := yaml.Marshal(conf)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode configuration: %v", err), op)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

func (h *handler) handleCapacity(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCapacity"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req capacityRequest
	if !h.decode(w, r, &req, op) {
		return
	}

	session, err := h.sessionFrom(req.estimateRequest)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	runner := planner.NewRunner(h.logger, coerce.Int(req.Limit))
	result, err := runner.MaxParticipants(session.Program(), session.Rates(), cast.ToFloat64(req.Ceiling))
	if err != nil {
		h.respondErrorWithOp(w, http.StatusUnprocessableEntity, err.Error(), op)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

// sessionFrom starts from the defaults and applies every posted field. Omitted
// fields keep their default values.
func (h *handler) sessionFrom(req estimateRequest) (*budget.Session, error) {
	session := budget.NewSession(budget.DefaultProgram(), budget.DefaultRates(), budget.WithLogger(h.logger))
	for _, values := range []map[string]interface{}{req.Program, req.Rates} {
		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := session.Set(key, cast.ToString(values[key])); err != nil {
				return nil, err
			}
		}
	}
	return session, nil
}

func (h *handler) respondReport(w http.ResponseWriter, session *budget.Session, start time.Time, op string) {
	report := session.Report()

	var warnings []string
	warnings = append(warnings, validation.ValidateProgram(report.Program)...)
	warnings = append(warnings, validation.ValidateRates(report.Rates)...)

	elapsed := time.Since(start)
	costs := report.Breakdown
	response := reportResponse{
		Report: report,
		Formatted: formattedCosts{
			Staffing:  format.Currency(costs.Staffing),
			Food:      format.Currency(costs.Food),
			Equipment: format.Currency(costs.Equipment),
			Transport: format.Currency(costs.Transport),
			Total:     format.Currency(costs.Total),
		},
		Warnings: warnings,
		Duration: elapsed.String(),
	}

	h.logger.Info("estimate computed",
		zap.String("op", op),
		zap.String("report", report.ID),
		zap.Float64("total", costs.Total),
		zap.Int("recommendations", len(report.Recommendations)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("estimate request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
