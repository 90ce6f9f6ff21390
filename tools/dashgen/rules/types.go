// Package rules generates Prometheus recording and alert rules as
// Prometheus Operator PrometheusRule resources.
package rules

// PrometheusRule is the Prometheus Operator custom resource.
type PrometheusRule struct {
	APIVersion string                 `yaml:"apiVersion"`
	Kind       string                 `yaml:"kind"`
	Metadata   PrometheusRuleMetadata `yaml:"metadata"`
	Spec       PrometheusRuleSpec     `yaml:"spec"`
}

// PrometheusRuleMetadata is the subset of object metadata the generator sets.
type PrometheusRuleMetadata struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

// PrometheusRuleSpec holds the rule groups.
type PrometheusRuleSpec struct {
	Groups []RuleGroup `yaml:"groups"`
}

// RuleGroup is a named set of rules evaluated together.
type RuleGroup struct {
	Name     string `yaml:"name"`
	Interval string `yaml:"interval,omitempty"`
	Rules    []Rule `yaml:"rules"`
}

// Rule is a recording rule when Record is set and an alert when Alert is.
type Rule struct {
	Record      string            `yaml:"record,omitempty"`
	Alert       string            `yaml:"alert,omitempty"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// ruleSelectorLabel is matched by the cluster Prometheus ruleSelector.
var ruleSelectorLabel = map[string]string{"prometheus": "system-rules-prometheus"}

// newPrometheusRule wraps one rule group in a resource of the same name
// family.
func newPrometheusRule(name, group string, rules ...Rule) PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata:   PrometheusRuleMetadata{Name: name, Labels: ruleSelectorLabel},
		Spec:       PrometheusRuleSpec{Groups: []RuleGroup{{Name: group, Rules: rules}}},
	}
}

func record(name, expr string) Rule {
	return Rule{Record: name, Expr: expr}
}

// Alert severities.
const (
	severityCritical = "critical"
	severityWarning  = "warning"
	severityInfo     = "info"
)

func alert(name, expr, forDuration, severity, summary, description string) Rule {
	return Rule{
		Alert:       name,
		Expr:        expr,
		For:         forDuration,
		Labels:      map[string]string{"severity": severity},
		Annotations: map[string]string{"summary": summary, "description": description},
	}
}
