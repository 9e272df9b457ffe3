package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"treemath/binexpr/pkg/config"
	"treemath/binexpr/pkg/history"
	"treemath/binexpr/pkg/telemetry/metrics"
)

func newTestServer(t *testing.T, withHistory bool) *Server {
	t.Helper()
	cfg := config.DefaultConfig()

	var store *history.Store
	if withHistory {
		hcfg := cfg.History
		hcfg.Path = filepath.Join(t.TempDir(), "history.db")
		var err error
		store, err = history.NewStore(&hcfg)
		if err != nil {
			t.Fatalf("NewStore() failed: %v", err)
		}
		t.Cleanup(func() { store.Close() })
	}

	collector := metrics.NewCollector(&cfg.Telemetry.Metrics)
	return NewServer(cfg, collector, store, nil)
}

func postJSON(t *testing.T, handler http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not valid JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return out
}

func TestHandleSimplify(t *testing.T) {
	handler := newTestServer(t, false).Handler()

	rec := postJSON(t, handler, "/v1/simplify", SimplifyRequest{Expression: "+ 1 + 2 0"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	resp := decodeBody[SimplifyResponse](t, rec)
	if resp.Simplified != "3" {
		t.Errorf("Simplified = %q, want %q", resp.Simplified, "3")
	}
	if resp.NodesBefore != 5 || resp.NodesAfter != 1 {
		t.Errorf("node counts = %d/%d, want 5/1", resp.NodesBefore, resp.NodesAfter)
	}
	if len(resp.RulesApplied) == 0 {
		t.Error("RulesApplied should not be empty")
	}
}

func TestHandleSimplify_FoldOverride(t *testing.T) {
	handler := newTestServer(t, false).Handler()

	fold := false
	rec := postJSON(t, handler, "/v1/simplify", SimplifyRequest{
		Expression: "+ 1 + 2 0",
		Fold:       &fold,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	resp := decodeBody[SimplifyResponse](t, rec)
	if resp.Simplified != "+ 1 2" {
		t.Errorf("Simplified = %q, want %q", resp.Simplified, "+ 1 2")
	}
}

func TestHandleSimplify_Notation(t *testing.T) {
	handler := newTestServer(t, false).Handler()

	rec := postJSON(t, handler, "/v1/simplify", SimplifyRequest{
		Expression: "+ 1 * 2 3",
		Notation:   "infix",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	resp := decodeBody[SimplifyResponse](t, rec)
	if resp.Simplified != "7" {
		t.Errorf("Simplified = %q, want %q", resp.Simplified, "7")
	}
	if resp.Notation != "infix" {
		t.Errorf("Notation = %q, want %q", resp.Notation, "infix")
	}
}

func TestHandleSimplify_Errors(t *testing.T) {
	handler := newTestServer(t, false).Handler()

	tests := []struct {
		name       string
		req        SimplifyRequest
		wantStatus int
		wantType   string
	}{
		{
			name:       "empty expression",
			req:        SimplifyRequest{},
			wantStatus: http.StatusBadRequest,
			wantType:   "malformed_input",
		},
		{
			name:       "invalid operator",
			req:        SimplifyRequest{Expression: "? 1 2"},
			wantStatus: http.StatusBadRequest,
			wantType:   "invalid_operator",
		},
		{
			name:       "trailing tokens",
			req:        SimplifyRequest{Expression: "+ 1 2 3"},
			wantStatus: http.StatusBadRequest,
			wantType:   "malformed_input",
		},
		{
			name:       "division by zero",
			req:        SimplifyRequest{Expression: "/ 1 0"},
			wantStatus: http.StatusUnprocessableEntity,
			wantType:   "folding",
		},
		{
			name:       "unknown notation",
			req:        SimplifyRequest{Expression: "+ 1 2", Notation: "roman"},
			wantStatus: http.StatusBadRequest,
			wantType:   "malformed_input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, handler, "/v1/simplify", tt.req)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d\nbody: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			resp := decodeBody[ErrorResponse](t, rec)
			if resp.Error.Type != tt.wantType {
				t.Errorf("error type = %q, want %q", resp.Error.Type, tt.wantType)
			}
		})
	}
}

func TestHandleSimplify_RejectsUnknownFields(t *testing.T) {
	handler := newTestServer(t, false).Handler()

	req := httptest.NewRequest(http.MethodPost, "/v1/simplify",
		strings.NewReader(`{"expression": "+ 1 2", "bogus": true}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleRender(t *testing.T) {
	handler := newTestServer(t, false).Handler()

	rec := postJSON(t, handler, "/v1/render", RenderRequest{
		Expression: "+ 1 * 2 3",
		Notation:   "infix",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	resp := decodeBody[RenderResponse](t, rec)
	if resp.Rendered != "(1 + (2 * 3))" {
		t.Errorf("Rendered = %q, want %q", resp.Rendered, "(1 + (2 * 3))")
	}
}

func TestHandleHistory(t *testing.T) {
	srv := newTestServer(t, true)
	handler := srv.Handler()

	// Two simplifications should leave two records behind.
	for _, expr := range []string{"+ 1 0", "* 2 3"} {
		rec := postJSON(t, handler, "/v1/simplify", SimplifyRequest{Expression: expr})
		if rec.Code != http.StatusOK {
			t.Fatalf("simplify status = %d\nbody: %s", rec.Code, rec.Body.String())
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/history?limit=10", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
	resp := decodeBody[HistoryResponse](t, rec)
	if resp.Count != 2 {
		t.Errorf("Count = %d, want 2", resp.Count)
	}
	for _, r := range resp.Records {
		if r.Source != "server" {
			t.Errorf("record source = %q, want %q", r.Source, "server")
		}
	}
}

func TestHandleHistory_Disabled(t *testing.T) {
	handler := newTestServer(t, false).Handler()

	req := httptest.NewRequest(http.MethodGet, "/v1/history", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	handler := newTestServer(t, false).Handler()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newTestServer(t, false).Handler()

	// Generate some traffic so the counters exist.
	postJSON(t, handler, "/v1/simplify", SimplifyRequest{Expression: "+ 1 0"})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "binexpr_parses_total") {
		t.Error("metrics output should contain binexpr_parses_total")
	}
}
