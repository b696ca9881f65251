// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtractionSummary outputs a human-readable summary of data extracted
// from an imported document.
func (p *Printer) PrintExtractionSummary(data *types.ResumeData) {
	if data == nil {
		return
	}

	var sb strings.Builder

	info := data.PersonalInfo
	name := strings.TrimSpace(info.FirstName + " " + info.LastName)
	if name == "" {
		name = "(not found)"
	}
	sb.WriteString(fmt.Sprintf("Name:   %s\n", name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", orNotFound(info.Email)))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", orNotFound(info.Phone)))

	p.printBox("Extracted Fields", sb.String())
}

// PrintResumeData outputs a human-readable summary of the resume data.
func (p *Printer) PrintResumeData(data *types.ResumeData) {
	if data == nil {
		return
	}

	var sb strings.Builder

	info := data.PersonalInfo
	sb.WriteString(fmt.Sprintf("Name:   %s %s\n", info.FirstName, info.LastName))
	if info.Title != "" {
		sb.WriteString(fmt.Sprintf("Title:  %s\n", info.Title))
	}
	if info.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", info.Email))
	}
	sb.WriteString("\n")

	if len(data.WorkExperience) > 0 {
		sb.WriteString("Work Experience:\n")
		count := min(len(data.WorkExperience), maxItemsToShow)
		for i := 0; i < count; i++ {
			item := data.WorkExperience[i]
			sb.WriteString(fmt.Sprintf("  • %s @ %s\n", item.Position, item.Company))
		}
		if len(data.WorkExperience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.WorkExperience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(data.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(data.Education), maxItemsToShow)
		for i := 0; i < count; i++ {
			item := data.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s\n", item.Degree, item.Institution))
		}
		sb.WriteString("\n")
	}

	if len(data.Skills) > 0 {
		names := make([]string, 0, min(len(data.Skills), maxItemsToShow))
		for i := 0; i < len(data.Skills) && i < maxItemsToShow; i++ {
			names = append(names, data.Skills[i].Name)
		}
		sb.WriteString(fmt.Sprintf("Skills: %s", strings.Join(names, ", ")))
		if len(data.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf(" (+%d more)", len(data.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	p.printBox("Resume", sb.String())
}

func orNotFound(s string) string {
	if s == "" {
		return "(not found)"
	}
	return s
}
