package interview

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const defaultScore = 3

// sectionHeadings maps the plain section headers the analysis prompt asks for
// to their decorated forms. Plain substring replacement: if the model phrases
// a header differently the decoration silently does not apply.
var sectionHeadings = [][2]string{
	{"Overall Summary", "### 🎯 Overall Summary"},
	{"Communication & Clarity", "### 🗣️ Communication & Clarity"},
	{"Demonstration of Skills (STAR Method)", "### 🛠️ Demonstration of Skills (STAR Method)"},
	{"Role-Specific Knowledge", "### 📚 Role-Specific Knowledge"},
	{"Top 3 Actionable Recommendations", "### 💡 Top 3 Actionable Recommendations"},
}

// ReportGenerator turns a finished transcript into a scored performance
// report. Scoring and narrative generation are separate model calls so the
// numeric output stays independently parseable.
type ReportGenerator struct {
	model ChatModel
}

func NewReportGenerator(model ChatModel) *ReportGenerator {
	return &ReportGenerator{model: model}
}

// renderTranscript formats history as "Interviewer: ..." / "Candidate: ..."
// lines in insertion order.
func renderTranscript(history []Turn) string {
	lines := make([]string, 0, len(history))
	for _, t := range history {
		label := "Interviewer"
		if t.Speaker == SpeakerCandidate {
			label = "Candidate"
		}
		lines = append(lines, label+": "+t.Content)
	}
	return strings.Join(lines, "\n")
}

// parseScore extracts the 1-5 rating from the scoring response. Anything
// unparseable or out of range falls back to a neutral 3 rather than failing
// the report.
func parseScore(response string) int {
	score, err := strconv.Atoi(strings.TrimSpace(response))
	if err != nil || score < 1 || score > 5 {
		return defaultScore
	}
	return score
}

func starRating(score int) string {
	return strings.Repeat("★", score) + strings.Repeat("☆", 5-score)
}

// Generate produces the final report text for a finished session. Any model
// failure in either stage propagates; no partial report is returned.
func (g *ReportGenerator) Generate(ctx context.Context, role string, history []Turn) (string, error) {
	transcript := renderTranscript(history)

	scoreResp, err := g.model.Complete(ctx, []Message{
		{Role: "user", Content: scoringPrompt(role, transcript)},
	})
	if err != nil {
		return "", fmt.Errorf("report: scoring stage: %w", err)
	}
	score := parseScore(scoreResp)

	analysis, err := g.model.Complete(ctx, []Message{
		{Role: "user", Content: analysisPrompt(role, transcript)},
	})
	if err != nil {
		return "", fmt.Errorf("report: analysis stage: %w", err)
	}
	for _, h := range sectionHeadings {
		analysis = strings.ReplaceAll(analysis, h[0], h[1])
	}

	return assembleReport(score, analysis), nil
}

// assembleReport concatenates the star line, the fixed descriptor block for
// the score, a separator, and the decorated analysis.
func assembleReport(score int, analysis string) string {
	rating, ok := ratingDescriptions[score]
	if !ok {
		rating = ratingDescriptions[defaultScore]
	}
	var details strings.Builder
	for _, d := range rating.Details {
		details.WriteString("<div>")
		details.WriteString(d)
		details.WriteString("</div>")
	}

	return fmt.Sprintf(`
<div style="text-align: center; font-size: 5em; letter-spacing: 0.2em; color: #FFD700;">%s</div>
<div style="text-align: center; margin-bottom: 2em; padding: 1.5em; border: 1px solid #444; border-radius: 10px; background-color: #1E1E1E;">
    <h3>%s</h3>
    <div style="text-align: left; display: inline-block;">%s</div>
</div>
<hr>
%s
`, starRating(score), rating.Title, details.String(), analysis)
}
