package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetQuestionNumber(data.QuestionNumber).
		SetGiven(data.Given).
		SetWant(data.Want).
		SetCorrect(data.Correct).
		SetMarked(data.Marked).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}
