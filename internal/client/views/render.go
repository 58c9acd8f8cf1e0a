package views

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dmitrijs2005/bootlang/internal/timex"
	"github.com/dustin/go-humanize"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

// RenderTitle writes a bold heading.
func RenderTitle(w io.Writer, title string) error {
	_, err := fmt.Fprintln(w, titleStyle.Render(title))
	return err
}

// RenderState writes the loading indicator and banners when set.
func RenderState(w io.Writer, s State) error {
	var b strings.Builder
	if s.Loading {
		b.WriteString("Loading...\n")
	}
	if s.Error != "" {
		fmt.Fprintf(&b, "Error: %s\n", s.Error)
	}
	if s.Success != "" {
		fmt.Fprintf(&b, "Success: %s\n", s.Success)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderTable writes rows as a bordered table.
func RenderTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.String())
	return err
}

// HumanTime renders t relative to now, "-" when unset.
func HumanTime(t timex.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t.Time)
}

// OrDash writes "-" for an empty cell.
func OrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
