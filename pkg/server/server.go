package server

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/fdtools/balancelog/pkg/analyze"
	"github.com/fdtools/balancelog/pkg/audit"
	"github.com/fdtools/balancelog/pkg/config"
	"github.com/fdtools/balancelog/pkg/filter"
	"github.com/fdtools/balancelog/pkg/i18n"
	"github.com/fdtools/balancelog/pkg/models"
	"github.com/fdtools/balancelog/pkg/parser"
	"github.com/fdtools/balancelog/pkg/story"
)

// Server handles HTTP requests for balance log analysis
type Server struct {
	config   *config.Config
	logger   *log.Logger
	mux      *http.ServeMux
	template *template.Template
	parser   *parser.Parser
}

// New creates a new HTTP server
func New(config *config.Config, logger *log.Logger) *Server {
	tmpl := template.Must(template.ParseGlob("templates/*.html"))
	return &Server{
		config:   config,
		logger:   logger,
		mux:      http.NewServeMux(),
		template: tmpl,
		parser:   parser.New(logger),
	}
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	s.setupRoutes()
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) setupRoutes() {
	// homepage
	s.mux.HandleFunc("/", s.withLogging(s.handleHome))

	s.mux.HandleFunc("/api/process", s.withLogging(s.handleProcess))
	s.mux.HandleFunc("/api/audit", s.withLogging(s.handleAudit))
	s.mux.HandleFunc("/api/story", s.withLogging(s.handleStory))
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if err := s.template.ExecuteTemplate(w, "index.html", nil); err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to render page", err)
		return
	}
}

// readRows pulls the uploaded log out of the request and parses it. The
// upload arrives as a multipart "log" file; window and symbol filters
// from the form apply before anything else sees the rows.
func (s *Server) readRows(r *http.Request) ([]models.Row, string, error) {
	file, header, err := r.FormFile("log")
	if err != nil {
		return nil, "", err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	rows, err := s.parser.ProcessBytes(data, header.Filename)
	if err != nil {
		return nil, "", err
	}

	// The filter runs even with every field blank: rows without a
	// valid timestamp must never reach aggregation.
	f := filter.Filters{
		Start:  r.FormValue("start"),
		End:    r.FormValue("end"),
		Symbol: r.FormValue("symbol"),
	}
	return f.Apply(rows), header.Filename, nil
}

// SummaryEntry mirrors one summary table row for JSON responses.
type SummaryEntry struct {
	Label string  `json:"label"`
	Asset string  `json:"asset"`
	In    float64 `json:"in"`
	Out   float64 `json:"out"`
	Net   float64 `json:"net"`
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	rows, filename, err := s.readRows(r)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to process log", err)
		return
	}

	summary := analyze.SummaryRows(rows)
	entries := make([]SummaryEntry, len(summary))
	for i, row := range summary {
		entries[i] = SummaryEntry{Label: row.Label, Asset: row.Asset, In: row.In, Out: row.Out, Net: row.Net}
	}

	swapText := func(lines []models.SwapLine) []string {
		out := make([]string, len(lines))
		for i, l := range lines {
			out[i] = l.Text
		}
		return out
	}

	s.logger.Info("processed log", "file", filename, "rows", len(rows))

	if err := s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "success",
		"rows":          len(rows),
		"types":         filter.DetectedTypes(rows),
		"type_order":    analyze.RankTypes(analyze.TotalsByType(rows)),
		"symbols":       filter.CountSymbols(rows),
		"summary":       entries,
		"swaps":         swapText(analyze.GroupSwaps(rows, analyze.CoinSwap)),
		"auto_exchange": swapText(analyze.GroupSwaps(rows, analyze.AutoExchange)),
		"daily_net":     analyze.DailyNet(rows),
		"asset_net":     analyze.AssetNet(rows),
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// auditParams reads audit inputs shared by the audit and story
// endpoints: anchor/end times plus the optional baseline block and
// anchor transfer.
func auditParams(r *http.Request) (audit.Params, error) {
	anchor := parser.ParseUTC(r.FormValue("anchor"))
	params := audit.Params{
		Anchor:   anchor,
		End:      parser.ParseUTC(r.FormValue("end")),
		Transfer: audit.ParseTransfer(r.FormValue("transfer_amount"), r.FormValue("transfer_asset")),
	}
	baseline, err := audit.ParseBaseline(r.FormValue("baseline"))
	if err != nil {
		return audit.Params{}, err
	}
	params.Baseline = baseline
	return params, nil
}

func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	rows, filename, err := s.readRows(r)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to process log", err)
		return
	}

	params, err := auditParams(r)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid audit inputs", err)
		return
	}

	report, err := audit.Build(rows, params)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "audit failed", err)
		return
	}

	s.logger.Info("audit complete", "file", filename, "rows", len(rows), "final_assets", len(report.Final))

	if err := s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"audit":  report.Text,
		"final":  report.Final,
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func (s *Server) handleStory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	rows, filename, err := s.readRows(r)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to process log", err)
		return
	}

	params, err := auditParams(r)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid audit inputs", err)
		return
	}

	lang := i18n.Lang(r.FormValue("lang"))
	if lang == "" {
		lang = i18n.Lang(s.config.Lang)
	}

	// Final balances come from the audit when an anchor is set;
	// without one the narrative simply has no final section.
	var final []models.AssetAmount
	if !params.Anchor.IsZero() {
		report, err := audit.Build(rows, params)
		if err != nil {
			s.respondError(w, r, http.StatusBadRequest, "audit failed", err)
			return
		}
		final = report.Final
	}

	text := story.Compose(story.Options{
		Lang:     lang,
		Start:    params.Anchor,
		Baseline: params.Baseline,
		Transfer: params.Transfer,
		Groups:   story.BuildGroups(analyze.SummaryRows(rows), lang),
		Final:    final,
	})

	s.logger.Info("story composed", "file", filename, "lang", lang, "rows", len(rows))

	if err := s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"story":  text,
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// ---------------- helpers ----------------

// withLogging wraps a handler to log the request and recover panics.
func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.logger.Info("request", "method", r.Method, "path", r.URL.Path)
		defer func() {
			if rec := recover(); rec != nil {
				s.respondError(w, r, http.StatusInternalServerError, "internal server error", fmt.Errorf("panic: %v", rec))
			}
		}()
		next(w, r)
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, code int, msg string, err error) {
	s.logger.Error(msg, "err", err, "path", r.URL.Path)
	if werr := s.writeJSON(w, code, map[string]interface{}{
		"status":  "error",
		"message": msg,
	}); werr != nil {
		s.logger.Warn("failed to write json response", "err", werr)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, payload interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}
