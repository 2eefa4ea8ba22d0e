package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// WriteText renders the report as aligned plain text.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ALGORITHM\tSOLVED\tRATE\tMEAN TIME\tMEDIAN\tSTDDEV\tMEAN ITER\tMEAN MOVES")
	for _, s := range r.Summaries {
		fmt.Fprintf(tw, "%s\t%d/%d\t%.0f%%\t%v\t%v\t%v\t%.0f\t%.1f\n",
			s.Algorithm, s.Solves, s.Runs, s.SuccessRate()*100,
			s.MeanDuration.Round(roundTo(s.MeanDuration)),
			s.MedianDuration.Round(roundTo(s.MedianDuration)),
			s.StdDevDuration.Round(roundTo(s.StdDevDuration)),
			s.MeanIterations, s.MeanMoves)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIXTURE\tALGORITHM\tSTATUS\tMOVES\tITER\tTIME")
	for _, m := range r.Measurements {
		status := m.Status.String()
		if m.Err != nil {
			status = "error"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%v\n",
			m.Fixture, m.Algorithm, status, m.Moves, m.Iterations,
			m.Duration.Round(roundTo(m.Duration)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\ntotal benchmark time: %v\n", r.Elapsed.Round(roundTo(r.Elapsed)))
	return nil
}

// roundTo picks a display precision proportional to the magnitude.
func roundTo(d time.Duration) time.Duration {
	switch {
	case d >= time.Second:
		return 10 * time.Millisecond
	case d >= time.Millisecond:
		return 10 * time.Microsecond
	default:
		return time.Microsecond
	}
}
