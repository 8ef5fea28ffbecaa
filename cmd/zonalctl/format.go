package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/salar-zonal-stats/internal/domain"
)

// printResult writes a result as a per-class table to out.
func printResult(out io.Writer, r *domain.ZonalResult) {
	_, _ = fmt.Fprintf(out, "%s  %s  %s\n", r.AreaName, r.IndexUsed, r.Metadata.SceneID)
	_, _ = fmt.Fprintf(out, "Generated %s\n\n", r.Timestamp)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	_, _ = fmt.Fprintln(w, "CLASS\tMEDIAN\tMEAN\tQ1\tQ3\tMIN\tMAX\tSTD\tAREA_HA\tSHARE\t")
	for _, s := range r.Stats {
		_, _ = fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%d\t%.1f%%\t\n",
			s.ClassName,
			s.Median,
			s.Mean,
			s.Q1,
			s.Q3,
			s.Min,
			s.Max,
			s.StdDev,
			s.AreaHa,
			r.AreaShare(s.ClassName),
		)
	}
	_ = w.Flush()

	_, _ = fmt.Fprintf(out, "\nTotal area: %d ha, weighted median: %.4f\n", r.TotalArea, r.WeightedMedian())
}

// printSalars writes the catalog to out.
func printSalars(out io.Writer, salars []domain.Salar) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tENVIRONMENT\tLAT\tLNG")
	_, _ = fmt.Fprintln(w, "----\t-----------\t---\t---")
	for _, s := range salars {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\n", s.Name, s.Environment, s.Lat, s.Lng)
	}
	_ = w.Flush()
}
