package domain

import "math"

// FeedbackBand is the qualitative tier for a final percentage.
type FeedbackBand string

const (
	BandPerfect     FeedbackBand = "perfect"
	BandStrong      FeedbackBand = "strong"
	BandEncouraging FeedbackBand = "encouraging"
	BandRetry       FeedbackBand = "retry"
)

// FeedbackFor maps a percentage to its band. Boundary values belong to the higher band.
func FeedbackFor(percentage int) FeedbackBand {
	switch {
	case percentage >= 100:
		return BandPerfect
	case percentage >= 80:
		return BandStrong
	case percentage >= 50:
		return BandEncouraging
	default:
		return BandRetry
	}
}

// Message is the text shown on the summary screen.
func (b FeedbackBand) Message() string {
	switch b {
	case BandPerfect:
		return "Perfect Score!"
	case BandStrong:
		return "Excellent Work!"
	case BandEncouraging:
		return "Good Job, Keep Practicing!"
	default:
		return "You can do it! Try again!"
	}
}

// Percentage is round(100 * score / total); zero when total is zero.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}

// Summary is the result of a finished session.
type Summary struct {
	Score      int          `json:"score"`
	Total      int          `json:"total"`
	Percentage int          `json:"percentage"`
	Band       FeedbackBand `json:"band"`
	Message    string       `json:"message"`
}

// NewSummary computes the percentage and band for a score.
func NewSummary(score, total int) Summary {
	pct := Percentage(score, total)
	band := FeedbackFor(pct)
	return Summary{
		Score:      score,
		Total:      total,
		Percentage: pct,
		Band:       band,
		Message:    band.Message(),
	}
}
