package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/iwvelando/compound-interest/internal/calculator"
	"github.com/iwvelando/compound-interest/internal/config"
	"github.com/iwvelando/compound-interest/pkg/constants"
	"github.com/iwvelando/compound-interest/pkg/format"
	"github.com/iwvelando/compound-interest/pkg/interest"
	"github.com/iwvelando/compound-interest/pkg/output"
	"github.com/iwvelando/compound-interest/pkg/rates"
	"github.com/iwvelando/compound-interest/pkg/tax"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the web UI and the
// calculation API. A nil cfg uses the defaults of LoadConfig.
func NewHandler(logger *zap.Logger, cfg *Config, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg, _ = LoadConfig("")
	}

	maxUploadSize := cfg.UploadSizeBytes()
	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}
	h.logger.Debug("handler configured",
		zap.String("op", "server.NewHandler"),
		zap.Int64("maxUploadSize", maxUploadSize),
		zap.Float64("requestsPerSecond", cfg.RateLimit.RequestsPerSecond),
	)

	api := http.NewServeMux()

	// Single calculation from the form
	api.HandleFunc("/api/calculate", h.handleCalculate)

	// Annual/monthly rate sync
	api.HandleFunc("/api/rates/convert", h.handleConvertRate)

	// Withholding table
	api.HandleFunc("/api/tax/brackets", h.handleTaxBrackets)

	// Batch calculation from an uploaded YAML file
	api.HandleFunc("/api/calculations", h.handleCalculations)

	// Form to YAML export
	api.HandleFunc("/api/export", h.handleExport)

	// Version endpoint for UI metadata
	api.HandleFunc("/api/version", h.handleVersion)

	mux := http.NewServeMux()
	mux.Handle("/api/", withRateLimit(newLimiter(cfg.RateLimit), api))

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/", http.FileServer(http.FS(sub)))

	return withRequestID(logger, mux)
}

type calculateRequest struct {
	Name                string           `json:"name"`
	Principal           localizedNumber  `json:"principal"`
	MonthlyContribution localizedNumber  `json:"monthlyContribution"`
	AnnualRate          *localizedNumber `json:"annualRate"`
	MonthlyRate         *localizedNumber `json:"monthlyRate"`
	Time                localizedNumber  `json:"time"`
	TimeUnit            string           `json:"timeUnit"`
	Frequency           int              `json:"frequency"`
}

func (req calculateRequest) calculation() config.Calculation {
	calc := config.Calculation{
		Name:                strings.TrimSpace(req.Name),
		Active:              true,
		Principal:           float64(req.Principal),
		MonthlyContribution: float64(req.MonthlyContribution),
		Time:                float64(req.Time),
		TimeUnit:            req.TimeUnit,
		Frequency:           req.Frequency,
	}
	if calc.Name == "" {
		calc.Name = "calculo"
	}
	if req.AnnualRate != nil {
		calc.AnnualRate = float64(*req.AnnualRate)
	} else if req.MonthlyRate != nil {
		calc.MonthlyRate = float64(*req.MonthlyRate)
	}
	return calc
}

type calculateResponse struct {
	Name       string               `json:"name"`
	Result     interest.Result      `json:"result"`
	Comparison *interest.Comparison `json:"comparison,omitempty"`
	Rate       rateResponse         `json:"rate"`
	Display    displayValues        `json:"display"`
	Notes      []string             `json:"notes,omitempty"`
	Duration   string               `json:"duration,omitempty"`
}

type rateResponse struct {
	Annual  float64 `json:"annual"`
	Monthly float64 `json:"monthly"`
	Driver  string  `json:"driver"`
	Display string  `json:"display"`
}

type displayValues struct {
	TotalInvested         string `json:"totalInvested"`
	Gross                 string `json:"gross"`
	GrossProfit           string `json:"grossProfit"`
	Tax                   string `json:"tax"`
	Net                   string `json:"net"`
	NetProfit             string `json:"netProfit"`
	TaxRate               string `json:"taxRate"`
	Period                string `json:"period"`
	EquivalentAnnualRate  string `json:"equivalentAnnualRate,omitempty"`
	EquivalentMonthlyRate string `json:"equivalentMonthlyRate,omitempty"`
}

type calculationsResponse struct {
	Calculations []calculateResponse `json:"calculations"`
	CSV          string              `json:"csv"`
	Warnings     []string            `json:"warnings,omitempty"`
	Duration     string              `json:"duration"`
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	var req calculateRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode calculation: %v", err), op)
		return
	}

	outcome, err := calculator.Evaluate(req.calculation())
	if err != nil {
		h.respondInputError(w, r, err, op)
		return
	}

	elapsed := time.Since(start)
	response := buildResponse(outcome)
	response.Duration = elapsed.String()

	loggerFromContext(r.Context()).Info("calculation computed",
		zap.String("op", op),
		zap.String("mode", string(outcome.Result.Mode)),
		zap.Float64("taxRate", outcome.Result.TaxRate),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, r, http.StatusOK, response)
}

type convertRequest struct {
	Annual  *localizedNumber `json:"annual"`
	Monthly *localizedNumber `json:"monthly"`
}

func (h *handler) handleConvertRate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleConvertRate"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req convertRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode rate: %v", err), op)
		return
	}

	var pair rates.RateInput
	switch {
	case req.Annual != nil:
		pair.SetAnnual(float64(*req.Annual))
	case req.Monthly != nil:
		pair.SetMonthly(float64(*req.Monthly))
	default:
		h.respondError(w, r, http.StatusBadRequest, "expected annual or monthly rate", op)
		return
	}

	h.writeJSON(w, r, http.StatusOK, toRateResponse(pair))
}

func (h *handler) handleTaxBrackets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	type bracket struct {
		MaxDays float64 `json:"maxDays,omitempty"`
		Rate    float64 `json:"rate"`
	}
	brackets := tax.Brackets()
	payload := make([]bracket, 0, len(brackets))
	for _, b := range brackets {
		payload = append(payload, bracket{MaxDays: b.MaxDays, Rate: b.Rate})
	}
	h.writeJSON(w, r, http.StatusOK, map[string]interface{}{"brackets": payload})
}

func (h *handler) handleCalculations(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculations"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), op)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, "missing configuration file", op)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			loggerFromContext(r.Context()).Warn("failed to close uploaded file",
				zap.String("op", op),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), op)
		return
	}

	conf, err := config.LoadConfigurationFromReader(&buf)
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	outcomes, err := calculator.Run(loggerFromContext(r.Context()), *conf)
	if err != nil {
		h.respondInputError(w, r, err, op)
		return
	}

	elapsed := time.Since(start)
	response := calculationsResponse{
		Calculations: make([]calculateResponse, 0, len(outcomes)),
		CSV:          output.CsvString(outcomes),
		Warnings:     conf.ValidateConfiguration(),
		Duration:     elapsed.String(),
	}
	for _, outcome := range outcomes {
		response.Calculations = append(response.Calculations, buildResponse(outcome))
	}

	loggerFromContext(r.Context()).Info("calculations computed",
		zap.String("op", op),
		zap.Int("calculations", len(outcomes)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, r, http.StatusOK, response)
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleExport"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req calculateRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode calculation: %v", err), op)
		return
	}

	conf := config.Configuration{Calculations: []config.Calculation{req.calculation()}}
	yamlBytes, err := yaml.Marshal(conf)
	if err != nil {
		h.respondError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to encode configuration: %v", err), op)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func buildResponse(outcome calculator.Outcome) calculateResponse {
	res := outcome.Result
	display := displayValues{
		TotalInvested: format.Currency(res.TotalInvested),
		Gross:         format.Currency(res.Gross),
		GrossProfit:   format.Currency(res.GrossProfit),
		Tax:           format.Currency(res.Tax),
		Net:           format.Currency(res.Net),
		NetProfit:     format.Currency(res.NetProfit),
		TaxRate:       format.RateComma(res.TaxRate) + "%",
		Period:        fmt.Sprintf("%.0f dias", res.Days),
	}
	if res.EquivalentAnnualRate != nil {
		display.EquivalentAnnualRate = format.RateComma(*res.EquivalentAnnualRate) + "% a.a."
	}
	if res.EquivalentMonthlyRate != nil {
		display.EquivalentMonthlyRate = format.RateComma(*res.EquivalentMonthlyRate) + "% a.m."
	}

	return calculateResponse{
		Name:       outcome.Name,
		Result:     res,
		Comparison: outcome.Comparison,
		Rate:       toRateResponse(outcome.Rate),
		Display:    display,
		Notes:      outcome.Notes,
	}
}

func toRateResponse(pair rates.RateInput) rateResponse {
	return rateResponse{
		Annual:  pair.Annual,
		Monthly: pair.Monthly,
		Driver:  pair.Driver.String(),
		Display: pair.String(),
	}
}

func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func (h *handler) respondError(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	loggerFromContext(r.Context()).Error("calculation request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, r, status, map[string]string{"error": msg})
}

// respondInputError answers 400 and, for validation failures, lists each
// problem under "details".
func (h *handler) respondInputError(w http.ResponseWriter, r *http.Request, err error, op string) {
	var inputErr *calculator.InputError
	if !errors.As(err, &inputErr) {
		h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	details := make([]string, 0, len(inputErr.Problems))
	for _, problem := range inputErr.Problems {
		details = append(details, problem.Error())
	}
	loggerFromContext(r.Context()).Info("calculation rejected",
		zap.String("op", op),
		zap.String("calculation", inputErr.Calculation),
		zap.Strings("problems", details),
	)

	h.writeJSON(w, r, http.StatusBadRequest, map[string]interface{}{
		"error":   err.Error(),
		"details": details,
	})
}

func (h *handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		loggerFromContext(r.Context()).Error("failed to write JSON response", zap.Error(err))
	}
}
