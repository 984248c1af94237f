// Package render draws client state as plain terminal text.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dmitrijs2005/resumerag/internal/client/models"
)

// BarWidth is the number of cells in a similarity bar.
const BarWidth = 20

const (
	barFilled = "█"
	barEmpty  = "░"
)

// Percent returns similarity×100 rounded to two decimals.
func Percent(similarity float64) float64 {
	return math.Round(similarity*10000) / 100
}

// SimilarityLabel formats a score as "NN.NN% Match".
func SimilarityLabel(similarity float64) string {
	return fmt.Sprintf("%.2f%% Match", similarity*100)
}

// FilledCells is the number of filled bar cells for similarity, clamped to
// [0, width].
func FilledCells(similarity float64, width int) int {
	n := int(math.Round(Percent(similarity) * float64(width) / 100))
	return max(0, min(n, width))
}

// Bar draws a bar of width cells filled in proportion to similarity.
func Bar(similarity float64, width int) string {
	filled := FilledCells(similarity, width)
	return "[" + strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, width-filled) + "]"
}

// SkillTags renders up to models.MaxSkillsShown skills in server order.
func SkillTags(r models.Result) string {
	skills := r.ShownSkills()
	tags := make([]string, len(skills))
	for i, s := range skills {
		tags[i] = "[" + s + "]"
	}
	return strings.Join(tags, " ")
}

// Result writes one result entry.
func Result(w io.Writer, query string, r models.Result) {
	fmt.Fprintf(w, "%s\n", r.Filename)
	fmt.Fprintf(w, "  %s %s\n", Bar(r.Similarity, BarWidth), SimilarityLabel(r.Similarity))
	fmt.Fprintf(w, "  AI Insight for: \"%s\"\n", query)
	if r.Snippet != "" {
		fmt.Fprintf(w, "  %s\n", r.Snippet)
	}
	if tags := SkillTags(r); tags != "" {
		fmt.Fprintf(w, "  %s\n", tags)
	}
}

// SearchSession writes every result of s separated by blank lines. A nil
// or empty session writes nothing.
func SearchSession(w io.Writer, s *models.SearchSession) {
	if s == nil {
		return
	}
	for i, r := range s.Results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		Result(w, s.Query, r)
	}
}

// Status writes msg with a severity prefix, or nothing for an empty message.
func Status(w io.Writer, msg models.StatusMessage) {
	if msg.IsZero() {
		return
	}
	prefix := "i"
	switch msg.Severity {
	case models.SeveritySuccess:
		prefix = "✓"
	case models.SeverityError:
		prefix = "✗"
	}
	fmt.Fprintf(w, "%s %s\n", prefix, msg.Text)
}
