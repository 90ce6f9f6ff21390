package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dataset-pricer/tools/dashgen/rules"
)

var known = map[string]bool{
	"dpr_http_requests_total":  true,
	"dpr:http_requests:rate5m": true,
}

func TestExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		expr       string
		wantErrors int
	}{
		{name: "known metric", expr: `sum(rate(dpr_http_requests_total[5m]))`},
		{name: "recording rule", expr: `dpr:http_requests:rate5m * 100`},
		{name: "scalar only", expr: `time()`},
		{name: "unknown metric", expr: `rate(legacy_http_requests_total[5m])`, wantErrors: 1},
		{name: "syntax error", expr: `sum(rate(dpr_http_requests_total[5m])`, wantErrors: 1},
		{name: "empty", expr: "", wantErrors: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Expr("test", tt.expr, known)
			assert.Len(t, res.Errors, tt.wantErrors, "errors: %v", res.Errors)
			assert.Equal(t, tt.wantErrors == 0, res.Ok())
		})
	}
}

func TestRules(t *testing.T) {
	t.Parallel()

	cr := rules.PrometheusRule{
		Spec: rules.PrometheusRuleSpec{
			Groups: []rules.RuleGroup{{
				Name: "g",
				Rules: []rules.Rule{
					{Record: "dpr:http_requests:rate5m", Expr: `sum(rate(dpr_http_requests_total[5m]))`},
					{Alert: "Broken", Expr: `missing_metric > 0`},
				},
			}},
		},
	}

	res := Rules(cr, known)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "g/Broken")
	assert.Contains(t, res.Errors[0], "missing_metric")
}
