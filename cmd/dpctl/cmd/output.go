package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	apiclient "github.com/donaldgifford/dataset-pricer/internal/api/client"
	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func usd(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func usdOrDash(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return usd(*d)
}

// explanationFactors decodes the factor list stored on a snapshot.
func explanationFactors(s *domain.PricingSnapshot) []string {
	var exp domain.SnapshotExplanation
	if err := json.Unmarshal(s.Explanation, &exp); err != nil {
		return nil
	}
	return exp.Factors
}

func printRecommendation(w io.Writer, r *apiclient.Recommendation) error {
	tw := newTabWriter(w)
	if s := r.Snapshot; s != nil {
		tw.writef("Item:\t%s\n", s.ItemID)
		tw.writef("Snapshot:\t%s\n", s.ID)
		tw.writef("Recommended:\t%s\n", usd(s.RecommendedPriceUSD))
		tw.writef("Current:\t%s\n", usdOrDash(r.CurrentPriceUSD))
		tw.writef("Computed:\t%s\n", s.ComputedAt.Format(timeLayout))
		tw.writef("Factors:\t%s\n", strings.Join(explanationFactors(s), "; "))
	}
	if c := r.Config; c != nil {
		tw.writef("Auto-pricing:\t%v\n", c.AutoPricingEnabled)
		tw.writef("Guardrails:\t%s - %s, max %d%%/week\n",
			usd(c.MinPriceUSD), usd(c.MaxPriceUSD), c.MaxWeeklyChangePct)
	} else {
		tw.writef("Guardrails:\tnone\n")
	}
	return tw.finish()
}

func printConfig(w io.Writer, c *domain.PricingConfig) error {
	tw := newTabWriter(w)
	tw.writef("Item:\t%s\n", c.ItemID)
	tw.writef("Auto-pricing:\t%v\n", c.AutoPricingEnabled)
	tw.writef("Min price:\t%s\n", usd(c.MinPriceUSD))
	tw.writef("Max price:\t%s\n", usd(c.MaxPriceUSD))
	tw.writef("Max weekly change:\t%d%%\n", c.MaxWeeklyChangePct)
	if c.LastAppliedAt != nil {
		tw.writef("Last applied:\t%s\n", c.LastAppliedAt.Format(timeLayout))
	}
	return tw.finish()
}

func printHistory(w io.Writer, h *domain.PriceHistory) error {
	tw := newTabWriter(w)
	tw.writef("SNAPSHOT\tCOMPUTED\tRECOMMENDED\tAPPLIED\n")
	for i := range h.Snapshots {
		s := &h.Snapshots[i]
		applied := "-"
		if s.AppliedPriceUSD.Valid {
			applied = usd(s.AppliedPriceUSD.Decimal)
		}
		tw.writef("%s\t%s\t%s\t%s\n", s.ID, s.ComputedAt.Format(timeLayout), usd(s.RecommendedPriceUSD), applied)
	}

	tw.writef("\nAPPLIED AT\tACTOR\tOLD\tNEW\tREASON\n")
	for i := range h.Audits {
		a := &h.Audits[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			a.AppliedAt.Format(timeLayout), a.ActorID, usd(a.OldPriceUSD), usd(a.NewPriceUSD), a.Reason)
	}
	return tw.finish()
}

func printPreview(w io.Writer, p *apiclient.Preview) error {
	tw := newTabWriter(w)
	tw.writef("Recommended:\t$%d\n", p.RecommendedPriceUSD)
	for _, f := range p.ExplanationFactors {
		tw.writef("\t- %s\n", f)
	}
	return tw.finish()
}

func printRepriceResult(w io.Writer, r *apiclient.RepriceResult) error {
	tw := newTabWriter(w)
	tw.writef("Applied: %d  Skipped: %d  Errors: %d  (%dms)\n\n",
		r.Summary.Applied, r.Summary.Skipped, r.Summary.Errors, r.ElapsedMS)
	tw.writef("ITEM\tSTATUS\tDETAIL\n")
	for i := range r.Results {
		o := &r.Results[i]
		tw.writef("%s\t%s\t%s\n", o.ItemID, o.Status, truncate(o.Detail, 60))
	}
	return tw.finish()
}

func printJobRunsTable(w io.Writer, runs []domain.JobRun) error {
	tw := newTabWriter(w)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tROWS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format(timeLayout)
		}
		rows := "-"
		if r.RowsAffected != nil {
			rows = fmt.Sprintf("%d", *r.RowsAffected)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format(timeLayout),
			completed,
			rows,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
