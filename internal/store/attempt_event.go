package store

import (
	"context"
	"fmt"

	"github.com/cylin/examdrill/ent"
	"github.com/cylin/examdrill/ent/attemptevent"
)

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetExamID(data.ExamID).
		SetExamName(data.ExamName).
		SetScore(data.Score).
		SetCorrect(data.Correct).
		SetWrong(data.Wrong).
		SetUnanswered(data.Unanswered).
		SetQuestionCount(data.QuestionCount).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, limit int) ([]Attempt, error) {
	q := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	attempts := make([]Attempt, 0, len(rows))
	for _, row := range rows {
		attempts = append(attempts, Attempt{
			AttemptID:     row.AttemptID,
			Timestamp:     row.Timestamp,
			ExamID:        row.ExamID,
			ExamName:      row.ExamName,
			Score:         row.Score,
			Correct:       row.Correct,
			Wrong:         row.Wrong,
			Unanswered:    row.Unanswered,
			QuestionCount: row.QuestionCount,
			DurationSecs:  row.DurationSecs,
		})
	}
	return attempts, nil
}

func (r *eventRepo) ExamAverage(ctx context.Context, examID string) (float64, int, error) {
	count, err := r.client.AttemptEvent.Query().
		Where(attemptevent.ExamID(examID)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count attempts: %w", err)
	}
	if count == 0 {
		return 0, 0, nil
	}

	mean, err := r.client.AttemptEvent.Query().
		Where(attemptevent.ExamID(examID)).
		Aggregate(ent.Mean(attemptevent.FieldScore)).
		Float64(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("average score: %w", err)
	}
	return mean, count, nil
}
