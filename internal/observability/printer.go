// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/prezlab/letter-generator/internal/letters"
	"github.com/prezlab/letter-generator/internal/record"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 64

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

	for _, line := range strings.Split(content, "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintEmployeeDetails outputs a human-readable summary of the resolved
// record before generation, mirroring what the operator should verify.
func (p *Printer) PrintEmployeeDetails(rec *record.Canonical) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:             %s\n", rec.FullName))
	sb.WriteString(fmt.Sprintf("Job Title:        %s\n", rec.JobTitle))
	sb.WriteString(fmt.Sprintf("Identification:   %s\n", rec.Identification))
	sb.WriteString(fmt.Sprintf("Joining Date:     %s\n", rec.JoiningDate))
	sb.WriteString(fmt.Sprintf("Wage:             %s\n", letters.FormatWage(rec.Wage)))
	sb.WriteString(fmt.Sprintf("Company:          %s\n", rec.Company))
	sb.WriteString(fmt.Sprintf("Work Address:     %s\n", rec.WorkAddress))
	sb.WriteString(fmt.Sprintf("Registrar (CR):   %s\n", rec.CompanyRegistrar))
	sb.WriteString(fmt.Sprintf("Company Country:  %s\n", rec.CompanyCountry))
	sb.WriteString(fmt.Sprintf("Company (Arabic): %s\n", rec.CompanyArabicName))
	sb.WriteString(fmt.Sprintf("P&C Head:         %s\n", rec.HeadOfPeopleCulture))
	sb.WriteString(fmt.Sprintf("P&C Head (Ar):    %s", rec.HeadOfPeopleCultureArabic))

	p.printBox("EMPLOYEE DETAILS", sb.String())
}

// PrintNotice surfaces a non-fatal informational notice.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintNotice(n *record.Notice) {
	if n == nil {
		return
	}
	fmt.Fprintf(p.out, "Note: %s\n", n.Message)
}

// PrintTemplates lists the template registry.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintTemplates(templates []letters.Template) {
	for _, t := range templates {
		marker := " "
		if t.Travel {
			marker = "*"
		}
		fmt.Fprintf(p.out, "%-20s %s %-32s %s\n", t.Key, marker, t.Name, t.File)
	}
	fmt.Fprintln(p.out, "\n* requires travel details (--country, --start-date, --end-date)")
}
