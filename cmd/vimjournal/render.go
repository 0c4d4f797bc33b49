package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/aretw0/vimjournal/pkg/core"
	"github.com/aretw0/vimjournal/pkg/journal"
)

var (
	seqColor    = color.New(color.FgHiBlack).SprintFunc()
	tagColor    = color.New(color.FgCyan).SprintFunc()
	hoursColor  = color.New(color.FgGreen).SprintFunc()
	errorPrefix = color.New(color.FgRed, color.Bold).SprintFunc()

	ratingColors = map[string]func(...any) string{
		"*": color.New(color.FgYellow, color.Bold).SprintFunc(),
		"+": color.New(color.FgGreen).SprintFunc(),
		"=": color.New(color.FgBlue).SprintFunc(),
		"-": color.New(color.FgRed).SprintFunc(),
		"x": color.New(color.FgHiBlack).SprintFunc(),
	}
)

// header renders the header line, colored unless color is off.
func header(r core.Record) string {
	if color.NoColor {
		return r.Header()
	}
	var b strings.Builder
	b.WriteString(seqColor(string(r.Seq)))
	b.WriteString(" |")
	rating := r.Rating
	if rating == "" {
		rating = core.DefaultRating
	}
	if paint, ok := ratingColors[rating]; ok {
		rating = paint(rating)
	}
	b.WriteString(rating)
	if strings.TrimSpace(r.Summary) != "" {
		b.WriteByte(' ')
		b.WriteString(r.Summary)
	}
	for _, t := range r.Tags {
		b.WriteByte(' ')
		b.WriteString(tagColor(t))
	}
	return b.String()
}

func printRecord(w io.Writer, r core.Record) {
	fmt.Fprintln(w, header(r)+body(r))
}

// printDated appends the duration to the header line.
func printDated(w io.Writer, r core.DatedRecord) {
	fmt.Fprintf(w, "%s %s%s\n", header(r.Record), hoursColor(fmt.Sprintf("+%d", r.Duration)), body(r.Record))
}

func body(r core.Record) string {
	if strings.TrimSpace(r.Body) == "" {
		return ""
	}
	return "\n\n" + r.Body + "\n"
}

func printTotals(w io.Writer, totals []journal.Total) {
	for _, t := range totals {
		fmt.Fprintf(w, "%s %s\n", hoursColor(fmt.Sprintf("% 8.2f", t.Hours())), t.Key)
	}
}
