package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	apiv1 "github.com/at-ishikawa/glossary/internal/api/v1"
)

type printer struct {
	w       io.Writer
	bold    *color.Color
	faint   *color.Color
	cyan    *color.Color
	success *color.Color
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		w:       w,
		bold:    color.New(color.Bold),
		faint:   color.New(color.Faint),
		cyan:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
	}
}

func (p *printer) message(msg string) {
	_, _ = p.success.Fprintln(p.w, msg)
}

func (p *printer) term(t *apiv1.Term) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", p.bold.Sprint(t.GetTerm()), p.cyan.Sprintf("[%s]", t.GetCategory()))
	_, _ = fmt.Fprintf(p.w, "  %s\n", t.GetDefinition())
	if related := t.GetRelatedTerms(); len(related) > 0 {
		_, _ = fmt.Fprintf(p.w, "  %s %s\n", p.faint.Sprint("Related:"), strings.Join(related, ", "))
	}
	if t.Source != "" {
		_, _ = fmt.Fprintf(p.w, "  %s %s\n", p.faint.Sprint("Source:"), t.Source)
	}
	_, _ = p.faint.Fprintf(p.w, "  created %s, updated %s\n", t.CreatedAt, t.UpdatedAt)
}

func (p *printer) terms(terms []*apiv1.Term, total int32) {
	_, _ = p.faint.Fprintf(p.w, "%d term(s)\n", total)
	for _, t := range terms {
		p.term(t)
	}
}

func (p *printer) page(terms []*apiv1.Term, total, page, pageSize int32) {
	pages := (total + pageSize - 1) / pageSize
	_, _ = p.faint.Fprintf(p.w, "page %d of %d, %d term(s) in total\n", page, pages, total)
	for _, t := range terms {
		p.term(t)
	}
}
