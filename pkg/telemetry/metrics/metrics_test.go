package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"treemath/binexpr/pkg/config"
)

func newTestCollector() *Collector {
	cfg := config.DefaultConfig().Telemetry.Metrics
	return NewCollector(&cfg)
}

func TestCollector_RecordParse(t *testing.T) {
	c := newTestCollector()

	c.RecordParse("")
	c.RecordParse("")
	c.RecordParse("malformed_input")

	if got := testutil.ToFloat64(c.parsesTotal.WithLabelValues("ok")); got != 2 {
		t.Errorf("parses_total{status=ok} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.parsesTotal.WithLabelValues("error")); got != 1 {
		t.Errorf("parses_total{status=error} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.parseErrorsTotal.WithLabelValues("malformed_input")); got != 1 {
		t.Errorf("parse_errors_total{type=malformed_input} = %v, want 1", got)
	}
}

func TestCollector_RecordSimplification(t *testing.T) {
	c := newTestCollector()

	c.RecordSimplification(4, time.Millisecond, nil)
	c.RecordSimplification(0, time.Millisecond, nil)

	if got := testutil.ToFloat64(c.simplificationsTotal.WithLabelValues("ok")); got != 2 {
		t.Errorf("simplifications_total{status=ok} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.nodesRemovedTotal); got != 4 {
		t.Errorf("nodes_removed_total = %v, want 4", got)
	}
}

func TestCollector_RecordRule(t *testing.T) {
	c := newTestCollector()

	c.RecordRule("additive_identity")
	c.RecordRule("additive_identity")
	c.RecordRule("constant_fold")

	if got := testutil.ToFloat64(c.ruleApplications.WithLabelValues("additive_identity")); got != 2 {
		t.Errorf("rule_applications_total{rule=additive_identity} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.ruleApplications.WithLabelValues("constant_fold")); got != 1 {
		t.Errorf("rule_applications_total{rule=constant_fold} = %v, want 1", got)
	}
}

func TestCollector_Handler(t *testing.T) {
	c := newTestCollector()
	c.RecordParse("")
	c.RecordHTTPRequest("/v1/simplify", "POST", "200", 5*time.Millisecond)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	c.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("metrics handler status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"binexpr_parses_total",
		"binexpr_http_requests_total",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
