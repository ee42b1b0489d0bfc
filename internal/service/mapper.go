package service

import (
	"fmt"

	"samayak/internal/domain"
	"samayak/internal/dto"

	"github.com/samber/lo"
)

func toSourceResponses(sources []domain.Source) []dto.SourceResponse {
	return lo.Map(sources, func(s domain.Source, _ int) dto.SourceResponse {
		return dto.SourceResponse{Title: s.Title, URI: s.URI}
	})
}

func toQuestionResponse(q domain.Question) dto.QuestionResponse {
	return dto.QuestionResponse{
		Question:      q.Question,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Sources:       toSourceResponses(q.Sources),
	}
}

func toStateResponse(ps *PlaySession) dto.SessionStateResponse {
	snap := ps.Session.Snapshot()
	resp := dto.SessionStateResponse{
		SessionID:          ps.ID,
		Title:              ps.Title(),
		Phase:              string(snap.Phase),
		Position:           snap.Position,
		Total:              snap.Total,
		Score:              snap.Score,
		Progress:           snap.Progress,
		SelectedAnswer:     snap.SelectedAnswer,
		Correct:            snap.Correct,
		ExplanationVisible: snap.ExplanationVisible,
	}

	if snap.Question != nil {
		resp.ProgressLabel = fmt.Sprintf("Question %d of %d", snap.Position+1, snap.Total)
		q := &dto.PlayQuestionResponse{
			Question: snap.Question.Question,
			Options:  snap.Question.Options,
		}
		if snap.SelectedAnswer != nil {
			q.CorrectAnswer = snap.Question.CorrectAnswer
		}
		if snap.ExplanationVisible {
			q.Explanation = snap.Question.Explanation
			q.Sources = toSourceResponses(snap.Question.Sources)
		}
		resp.Question = q
	}

	if snap.Phase == domain.PhaseFinished {
		summary := domain.NewSummary(snap.Score, snap.Total)
		resp.Progress = 100
		resp.Summary = &dto.SummaryResponse{
			Score:      summary.Score,
			Total:      summary.Total,
			Percentage: summary.Percentage,
			Band:       string(summary.Band),
			Message:    summary.Message,
		}
	}
	return resp
}
