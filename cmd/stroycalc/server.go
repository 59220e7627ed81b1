package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Simplici0/stroycalc/internal/calc"
	"github.com/Simplici0/stroycalc/internal/format"
	"github.com/Simplici0/stroycalc/internal/history"
	"github.com/Simplici0/stroycalc/internal/materials"
)

const requestIDHeader = "X-Request-ID"

type server struct {
	log    zerolog.Logger
	engine *calc.Engine
	store  *history.Store
	format *format.Formatter
	token  string
	ping   func() error
}

func newServer(a *app) *server {
	return &server{
		log:    a.log,
		engine: a.engine,
		store:  a.store,
		format: a.format,
		token:  a.cfg.APIToken,
		ping:   a.db.Ping,
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/materials", s.handleMaterials)
		r.Post("/calculate/{category}", s.handleCalculate)
		r.Get("/history", s.handleHistoryList)
		r.With(s.tokenMiddleware).Delete("/history", s.handleHistoryClear)
	})
	return r
}

// requestID tags each request with an id, reusing the caller's when given,
// and stores a logger carrying it in the request context.
func (s *server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		logger := s.log.With().Str("request_id", id).Logger()
		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context())))
	})
}

func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		zerolog.Ctx(r.Context()).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.ping != nil {
		if err := s.ping(); err != nil {
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("database ping failed")
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type categoryInfo struct {
	ID          materials.Category            `json:"id"`
	WasteFactor float64                       `json:"wasteFactor"`
	Options     map[string][]materials.Option `json:"options"`
}

type materialsResponse struct {
	Categories   []categoryInfo     `json:"categories"`
	ReserveSteps []float64          `json:"reserveSteps"`
	Currency     string             `json:"currency"`
	Prices       map[string]float64 `json:"prices"`
}

func (s *server) handleMaterials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, describeMaterials(s.engine))
}

// describeMaterials lists the selectable variants, reserve steps and prices
// an engine works with.
func describeMaterials(e *calc.Engine) materialsResponse {
	table := e.Table
	resp := materialsResponse{
		ReserveSteps: table.ReserveSteps(),
		Currency:     e.Prices.Currency,
		Prices:       make(map[string]float64),
	}
	for _, c := range materials.Categories() {
		resp.Categories = append(resp.Categories, categoryInfo{
			ID:          c,
			WasteFactor: table.WasteFactor(c),
			Options:     table.Options(c),
		})
	}
	for _, key := range e.Prices.Keys() {
		price, _ := e.Prices.Price(key)
		resp.Prices[key] = price.InexactFloat64()
	}
	return resp
}

type calculateResponse struct {
	Category  materials.Category `json:"category"`
	RequestID string             `json:"requestId"`
	Input     map[string]any     `json:"input"`
	Result    map[string]any     `json:"result"`
	Lines     []format.Line      `json:"lines"`
	Saved     bool               `json:"saved"`
	HistoryID string             `json:"historyId,omitempty"`
}

func (s *server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	category, err := materials.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error(), "")
		return
	}

	params, err := requestParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	save, err := parseFlag(params["save"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "save must be a boolean", "save")
		return
	}
	delete(params, "save")

	in, err := calc.ParseParams(category, params)
	if err != nil {
		writeCalcError(w, err)
		return
	}
	result, err := s.engine.Run(in)
	if err != nil {
		writeCalcError(w, err)
		return
	}

	resp := calculateResponse{
		Category:  category,
		RequestID: w.Header().Get(requestIDHeader),
		Input:     in.Params(),
		Result:    result.Values(),
		Lines:     s.format.Lines(result),
	}

	if save {
		rec, err := s.store.Append(r.Context(), category, resp.Input, resp.Result)
		if err != nil {
			logger.Error().Err(err).Str("category", category.String()).Msg("history append failed")
		} else {
			resp.Saved = true
			resp.HistoryID = rec.ID
		}
	}

	logger.Debug().Str("category", category.String()).Bool("saved", resp.Saved).Msg("calculated")
	writeJSON(w, http.StatusOK, resp)
}

type historyItem struct {
	history.Record
	Lines []format.Line `json:"lines"`
}

func (s *server) handleHistoryList(w http.ResponseWriter, r *http.Request) {
	var category materials.Category
	if raw := r.URL.Query().Get("category"); raw != "" {
		c, err := materials.ParseCategory(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "category")
			return
		}
		category = c
	}

	records, err := s.store.List(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("history list failed")
		writeError(w, http.StatusInternalServerError, "failed to load history", "")
		return
	}

	records = history.Filter(records, category)
	items := make([]historyItem, 0, len(records))
	for _, rec := range records {
		items = append(items, historyItem{Record: rec, Lines: s.format.Values(rec.Category, rec.Result)})
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": items})
}

func (s *server) handleHistoryClear(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Clear(r.Context()); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("history clear failed")
		writeError(w, http.StatusInternalServerError, "failed to clear history", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// requestParams flattens a JSON object or form body into the string map the
// calculators parse. Query parameters are merged under form values.
func requestParams(r *http.Request) (map[string]string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, errors.New("invalid JSON body")
		}
		params := make(map[string]string, len(body))
		for key, v := range body {
			switch val := v.(type) {
			case nil:
			case string:
				params[key] = val
			case float64:
				params[key] = strconv.FormatFloat(val, 'f', -1, 64)
			case bool:
				params[key] = strconv.FormatBool(val)
			default:
				return nil, fmt.Errorf("%s must be a string, number or boolean", key)
			}
		}
		for key, values := range r.URL.Query() {
			if _, ok := params[key]; !ok && len(values) > 0 {
				params[key] = values[0]
			}
		}
		return params, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, errors.New("invalid form")
	}
	params := make(map[string]string, len(r.Form))
	for key := range r.Form {
		params[key] = r.Form.Get(key)
	}
	return params, nil
}

func parseFlag(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "false", "off", "no":
		return false, nil
	case "1", "true", "on", "yes":
		return true, nil
	}
	return false, fmt.Errorf("invalid flag %q", raw)
}

// subTypeFields maps a lookup kind to the request parameter that selects it.
var subTypeFields = map[string]string{
	"brick type":       "brickType",
	"wall thickness":   "wallThickness",
	"grade":            "grade",
	"foundation shape": "foundationType",
	"tile size":        "tileSize",
	"layout pattern":   "layoutPattern",
	"paint type":       "paintType",
	"surface type":     "surfaceType",
}

func writeCalcError(w http.ResponseWriter, err error) {
	var inputErr *calc.InputError
	var subTypeErr *materials.SubTypeError
	switch {
	case errors.As(err, &inputErr):
		writeError(w, http.StatusBadRequest, err.Error(), inputErr.Field)
	case errors.As(err, &subTypeErr):
		writeError(w, http.StatusBadRequest, err.Error(), subTypeFields[subTypeErr.Kind])
	case errors.Is(err, calc.ErrInvalidInput), errors.Is(err, calc.ErrInvalidSubType):
		writeError(w, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, materials.ErrUnknownCategory):
		writeError(w, http.StatusNotFound, err.Error(), "")
	default:
		writeError(w, http.StatusInternalServerError, "calculation failed", "")
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg, field string) {
	writeJSON(w, status, errorResponse{Error: msg, Field: field})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
