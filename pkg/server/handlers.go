package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"treemath/binexpr/pkg/binexp/ast"
	binexperrors "treemath/binexpr/pkg/binexp/errors"
	"treemath/binexpr/pkg/binexp/parser"
	"treemath/binexpr/pkg/binexp/render"
	"treemath/binexpr/pkg/binexp/simplify"
	"treemath/binexpr/pkg/history"
)

// SimplifyRequest is the body of POST /v1/simplify.
type SimplifyRequest struct {
	// Expression is the whitespace-separated prefix expression.
	Expression string `json:"expression"`
	// Notation selects the output notation; empty uses the server default.
	Notation string `json:"notation,omitempty"`
	// Fold overrides the configured constant folding policy when set.
	Fold *bool `json:"fold,omitempty"`
}

// SimplifyResponse is the body of a successful POST /v1/simplify.
type SimplifyResponse struct {
	Input        string   `json:"input"`
	Simplified   string   `json:"simplified"`
	Notation     string   `json:"notation"`
	NodesBefore  int      `json:"nodes_before"`
	NodesAfter   int      `json:"nodes_after"`
	RulesApplied []string `json:"rules_applied"`
	DurationUs   int64    `json:"duration_us"`
}

// RenderRequest is the body of POST /v1/render.
type RenderRequest struct {
	Expression string `json:"expression"`
	Notation   string `json:"notation,omitempty"`
}

// RenderResponse is the body of a successful POST /v1/render.
type RenderResponse struct {
	Input    string `json:"input"`
	Notation string `json:"notation"`
	Rendered string `json:"rendered"`
}

// HistoryResponse is the body of GET /v1/history.
type HistoryResponse struct {
	Records []*history.Record `json:"records"`
	Count   int               `json:"count"`
}

// ErrorResponse is the JSON error envelope for all endpoints.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the structured error fields.
type ErrorDetail struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Token      string `json:"token,omitempty"`
	Position   string `json:"position,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func (s *Server) newParser() *parser.Parser {
	return parser.NewParser().
		WithMaxDepth(s.config.Expressions.MaxDepth).
		WithAnyOperator(s.config.Expressions.AllowAnyOperator)
}

func (s *Server) handleSimplify(w http.ResponseWriter, r *http.Request) {
	var req SimplifyRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.Expression == "" {
		writeError(w, http.StatusBadRequest, binexperrors.New(
			binexperrors.ErrorTypeMalformedInput, "expression is required"))
		return
	}

	notation, err := s.resolveNotation(req.Notation)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	tree, err := s.newParser().ParseString(req.Expression)
	if err != nil {
		s.collector.RecordParse(string(binexperrors.TypeOf(err)))
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.collector.RecordParse("")

	fold := s.config.Expressions.ConstantFolding
	if req.Fold != nil {
		fold = *req.Fold
	}

	var rules []string
	simplifier := simplify.NewSimplifier().
		WithConstantFolding(fold).
		WithRuleObserver(func(rule simplify.Rule) {
			rules = append(rules, string(rule))
			s.collector.RecordRule(string(rule))
		})

	start := time.Now()
	simplified, err := simplifier.Simplify(tree)
	elapsed := time.Since(start)

	nodesBefore := tree.Size()
	var nodesAfter int
	if err == nil {
		nodesAfter = simplified.Size()
	}
	s.collector.RecordSimplification(nodesBefore-nodesAfter, elapsed, err)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	rendered, err := render.Render(simplified, notation)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.recordHistory(r, &req, simplified, nodesBefore, fold, len(rules), elapsed)

	if rules == nil {
		rules = []string{}
	}
	writeJSON(w, http.StatusOK, SimplifyResponse{
		Input:        req.Expression,
		Simplified:   rendered,
		Notation:     string(notation),
		NodesBefore:  nodesBefore,
		NodesAfter:   nodesAfter,
		RulesApplied: rules,
		DurationUs:   elapsed.Microseconds(),
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.Expression == "" {
		writeError(w, http.StatusBadRequest, binexperrors.New(
			binexperrors.ErrorTypeMalformedInput, "expression is required"))
		return
	}

	notation, err := s.resolveNotation(req.Notation)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	tree, err := s.newParser().ParseString(req.Expression)
	if err != nil {
		s.collector.RecordParse(string(binexperrors.TypeOf(err)))
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.collector.RecordParse("")

	rendered, err := render.Render(tree, notation)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, RenderResponse{
		Input:    req.Expression,
		Notation: string(notation),
		Rendered: rendered,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusNotFound, binexperrors.New(
			binexperrors.ErrorTypeIO, "history is disabled"))
		return
	}

	f := history.Filter{Source: r.URL.Query().Get("source")}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, binexperrors.Newf(
				binexperrors.ErrorTypeMalformedInput, "invalid limit %q", raw))
			return
		}
		f.Limit = limit
	}

	records, err := s.store.Query(r.Context(), f)
	if err != nil {
		s.logger.Error("history query failed", "error", err)
		writeError(w, http.StatusInternalServerError, binexperrors.New(
			binexperrors.ErrorTypeIO, "history query failed"))
		return
	}
	if records == nil {
		records = []*history.Record{}
	}

	writeJSON(w, http.StatusOK, HistoryResponse{Records: records, Count: len(records)})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) resolveNotation(name string) (render.Notation, error) {
	if name == "" {
		name = s.config.Output.Notation
	}
	return render.ParseNotation(name)
}

// decodeJSON reads a size-limited JSON body into dst, writing the error
// response itself on failure.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.Server.MaxBodyBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, binexperrors.Newf(
			binexperrors.ErrorTypeMalformedInput, "invalid request body: %v", err))
		return false
	}
	return true
}

func (s *Server) recordHistory(r *http.Request, req *SimplifyRequest, simplified *ast.Node, nodesBefore int, fold bool, rulesApplied int, elapsed time.Duration) {
	if s.store == nil {
		return
	}
	rec := &history.Record{
		Source:       "server",
		Input:        req.Expression,
		Simplified:   render.Prefix(simplified),
		InputNodes:   nodesBefore,
		OutputNodes:  simplified.Size(),
		Folding:      fold,
		RulesApplied: rulesApplied,
		Duration:     elapsed,
	}
	if err := s.store.Append(r.Context(), rec); err != nil {
		s.logger.Error("failed to record history", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	detail := ErrorDetail{
		Type:    string(binexperrors.ErrorTypeMalformedInput),
		Message: err.Error(),
	}

	var typed *binexperrors.Error
	if errors.As(err, &typed) {
		detail.Type = string(typed.Type)
		detail.Message = typed.Message
		detail.Token = typed.Token
		detail.Suggestion = typed.Suggestion
		if typed.Token != "" {
			detail.Position = typed.Pos.String()
		}
	}

	writeJSON(w, status, ErrorResponse{Error: detail})
}
