// Package validate checks generated dashboards and rules for PromQL syntax
// errors and references to metrics the server does not export.
package validate

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/dataset-pricer/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings
// are reported but do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Expr parses a PromQL expression and checks every selected metric name
// against known. The location prefixes any finding.
func Expr(location, expr string, known map[string]bool) Result {
	var res Result

	if expr == "" {
		res.Errors = append(res.Errors, location+": empty expression")
		return res
	}

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", location, err))
		return res
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !known[vs.Name] {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: unknown metric %q", location, vs.Name))
		}
		return nil
	})

	return res
}

// Dashboard validates every Prometheus target in the dashboard, including
// panels nested inside rows.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	for i := range dash.Panels {
		p := dash.Panels[i]
		if p.Panel != nil {
			res.merge(panel(*p.Panel, known))
		}
		if p.RowPanel != nil {
			for j := range p.RowPanel.Panels {
				res.merge(panel(p.RowPanel.Panels[j], known))
			}
		}
	}

	return res
}

func panel(p dashboard.Panel, known map[string]bool) Result {
	var res Result

	title := "untitled"
	if p.Title != nil {
		title = *p.Title
	}
	if len(p.Targets) == 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has no targets", title))
		return res
	}

	for i, target := range p.Targets {
		var expr string
		switch q := target.(type) {
		case *prometheus.Dataquery:
			expr = q.Expr
		default:
			res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q target %d is not a Prometheus query", title, i))
			continue
		}
		res.merge(Expr(fmt.Sprintf("panel %q target %d", title, i), expr, known))
	}

	return res
}

// Rules validates every expression in a PrometheusRule resource.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result

	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			res.merge(Expr(fmt.Sprintf("%s/%s", g.Name, name), r.Expr, known))
		}
	}

	return res
}
