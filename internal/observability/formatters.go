// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skill-advisor/internal/types"
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

// PrintGapAnalysis outputs the missing skills and recommendations for a transition.
func (p *Printer) PrintGapAnalysis(analysis *types.GapAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	if len(analysis.MissingSkills) > 0 {
		sb.WriteString("Missing Skills:\n")
		count := min(len(analysis.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.MissingSkills[i]))
		}
		if len(analysis.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.MissingSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("No missing skills identified.\n\n")
	}

	if len(analysis.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		count := min(len(analysis.Recommendations), 3)
		for i := 0; i < count; i++ {
			rec := analysis.Recommendations[i]
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
		if len(analysis.Recommendations) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.Recommendations)-3))
		}
	}

	p.printBox("SKILL GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillFrequencies outputs the merged skill frequencies extracted from postings.
func (p *Printer) PrintSkillFrequencies(frequencies []types.SkillFrequency) {
	if len(frequencies) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills found across postings: %d\n\n", len(frequencies)))

	count := min(len(frequencies), maxItemsToShow)
	for i := 0; i < count; i++ {
		f := frequencies[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, f.Name))
		sb.WriteString(fmt.Sprintf("    Mentioned in %d postings\n", f.Frequency))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(frequencies) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more skills", len(frequencies)-maxItemsToShow))
	}

	p.printBox("EXTRACTED SKILL DEMAND", sb.String())
}

// PrintRankedCourses outputs the top ranked courses with scores and skills.
func (p *Printer) PrintRankedCourses(courses []types.Course) {
	if len(courses) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO COURSES RECOMMENDED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total courses ranked: %d\n\n", len(courses)))

	count := min(len(courses), maxItemsToShow)
	for i := 0; i < count; i++ {
		course := courses[i]
		title := course.Title
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %d", course.MatchScore()))
		sb.WriteString(fmt.Sprintf("  (%s, %s)\n", course.Platform, course.Difficulty))
		if len(course.Skills) > 0 {
			skills := strings.Join(course.Skills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(courses) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more courses", len(courses)-maxItemsToShow))
	}

	p.printBox("RECOMMENDED COURSES", sb.String())
}
