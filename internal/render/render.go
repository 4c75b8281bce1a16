package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/haskel/parafox/internal/analyze"
	"github.com/haskel/parafox/internal/drift"
	"github.com/haskel/parafox/internal/oracle"
)

// Renderer writes line-oriented human-readable blocks. With jsonOut it
// marshals the underlying structs instead, one object per block.
type Renderer struct {
	w       io.Writer
	jsonOut bool
}

func New(w io.Writer, jsonOut bool) *Renderer {
	return &Renderer{w: w, jsonOut: jsonOut}
}

// Comparison renders one benchmark comparison.
func (r *Renderer) Comparison(workload string, cmp *analyze.Comparison) {
	if r.jsonOut {
		r.encode(map[string]any{
			"workload":        workload,
			"times":           cmp.Times,
			"speedups":        cmp.Speedups,
			"best_index":      cmp.BestIndex,
			"recommendations": cmp.Recommendations,
		})
		return
	}

	fmt.Fprintln(r.w, headerStyle.Render(fmt.Sprintf("Benchmark: %s", workload)))
	for i, cfg := range cmp.Configs {
		line := fmt.Sprintf("  %-20s %8.3fs  %s",
			cfg.Name,
			cmp.Times[i],
			speedupStyle(cmp.Speedups[i]).Render(fmt.Sprintf("%.2fx", cmp.Speedups[i])),
		)
		if i == cmp.BestIndex {
			line += bestStyle.Render("  <- best")
		}
		fmt.Fprintln(r.w, line)
	}
	if len(cmp.Recommendations) > 0 {
		fmt.Fprintln(r.w, labelStyle.Render("Recommendations:"))
		for _, rec := range cmp.Recommendations {
			fmt.Fprintf(r.w, "  - %s\n", rec)
		}
	}
}

// Snapshot renders one monitor snapshot block. Part of drift.Sink.
func (r *Renderer) Snapshot(snap drift.Snapshot, changes []string) {
	if r.jsonOut {
		r.encode(map[string]any{
			"snapshot": snap,
			"changes":  changes,
		})
		return
	}

	fmt.Fprintln(r.w, headerStyle.Render(
		fmt.Sprintf("[%s] iteration %d", snap.Timestamp.Format("15:04:05"), snap.Iteration)))
	fmt.Fprintf(r.w, "  workers=%d chunk=%d est. speedup=%.2fx\n",
		snap.Result.Workers, snap.Result.ChunkSize, snap.Result.EstimatedSpeedup)
	for _, w := range snap.Result.Warnings {
		fmt.Fprintf(r.w, "  %s\n", warnStyle.Render("warning: "+w))
	}
	for _, c := range changes {
		fmt.Fprintf(r.w, "  %s\n", changeStyle.Render("drift: "+c))
	}
}

// Summary renders the monitor exit summary. Part of drift.Sink.
func (r *Renderer) Summary(sum drift.Summary) {
	if r.jsonOut {
		r.encode(map[string]any{"summary": sum})
		return
	}

	fmt.Fprintln(r.w, headerStyle.Render("Monitoring summary"))
	fmt.Fprintf(r.w, "  iterations: %d, elapsed: %s\n", sum.Iterations, sum.Elapsed.Round(time.Millisecond))
	if sum.First != nil && sum.Last != nil {
		fmt.Fprintf(r.w, "  first: %s\n", formatResult(*sum.First))
		fmt.Fprintf(r.w, "  last:  %s\n", formatResult(*sum.Last))
	}
	stable := "yes"
	if !sum.Stable {
		stable = "no"
	}
	fmt.Fprintf(r.w, "  stable worker count: %s, speedup spread: %.2f\n", stable, sum.SpeedupSpread)
}

func formatResult(res oracle.Result) string {
	return fmt.Sprintf("workers=%d chunk=%d est. speedup=%.2fx",
		res.Workers, res.ChunkSize, res.EstimatedSpeedup)
}

func (r *Renderer) encode(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(r.w, `{"error":%q}`+"\n", err.Error())
		return
	}
	fmt.Fprintln(r.w, string(data))
}

var _ drift.Sink = (*Renderer)(nil)
