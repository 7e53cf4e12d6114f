package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/gogpu/hostbridge/format"
)

type rowFilter struct {
	family       format.Family
	onlyFailures bool
}

func (f rowFilter) apply(rows []format.Row) []format.Row {
	out := rows[:0:0]
	for _, r := range rows {
		if f.family != format.FamilyInvalid && r.Requested.Family() != f.family {
			continue
		}
		if f.onlyFailures && r.Err == nil {
			continue
		}
		out = append(out, r)
	}
	return out
}

func writeTable(w io.Writer, rows []format.Row) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Format", "Family", "Gate", "Outcome", "Native", "Uses"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	for _, r := range rows {
		table.Append(cells(r))
	}
	table.Render()
}

func cells(r format.Row) []string {
	var native string
	uses := "-"
	if r.Err != nil {
		native = reason(r.Err)
	} else {
		native = r.Native.String()
		if r.Adjusted() {
			uses = r.Format.String()
		}
	}
	gate := format.Gate(r.Requested)
	if gate == "" {
		gate = "-"
	}
	return []string{
		r.Requested.String(),
		r.Requested.Family().String(),
		gate,
		r.Outcome().String(),
		native,
		uses,
	}
}

// reason names the translation failure without the format prefix.
func reason(err error) string {
	switch {
	case errors.Is(err, format.ErrObsoleteFormat):
		return "obsolete"
	case errors.Is(err, format.ErrNoDecoder):
		return "no decoder"
	case errors.Is(err, format.ErrUnsupportedFormat):
		return "unsupported"
	}
	return err.Error()
}

func writeSummary(w io.Writer, rows []format.Row, apple bool) {
	var counts [3]int
	for _, r := range rows {
		counts[r.Outcome()]++
	}
	fmt.Fprintf(w, "appleGPU=%t: %d exact, %d adjusted, %d failed\n",
		apple, counts[format.Exact], counts[format.Adjusted], counts[format.Failed])
}

func writeTranslation(w io.Writer, r format.Row) {
	switch r.Outcome() {
	case format.Exact:
		fmt.Fprintf(w, "%v -> %v\n", r.Requested, r.Native)
	case format.Adjusted:
		fmt.Fprintf(w, "%v -> %v (as %v)\n", r.Requested, r.Native, r.Format)
	default:
		fmt.Fprintf(w, "%v: %s\n", r.Requested, reason(r.Err))
	}
}
