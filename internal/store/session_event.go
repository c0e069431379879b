package store

import (
	"context"
	"fmt"

	"github.com/jaemin/readcoach/ent"
	"github.com/jaemin/readcoach/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetProblemID(data.ProblemID).
		SetTurnsTaken(data.TurnsTaken).
		SetDurationSecs(data.DurationSecs).
		SetCompleted(data.Completed)

	if len(data.StageCounts) > 0 {
		builder = builder.SetStageCounts(data.StageCounts)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListSessions(ctx context.Context, opts QueryOpts) ([]*SessionRecord, error) {
	q := r.client.SessionEvent.Query().
		Order(ent.Desc(sessionevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(sessionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(sessionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(sessionevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	out := make([]*SessionRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, &SessionRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			SessionEventData: SessionEventData{
				SessionID:    e.SessionID,
				Action:       e.Action,
				ProblemID:    e.ProblemID,
				TurnsTaken:   e.TurnsTaken,
				DurationSecs: e.DurationSecs,
				Completed:    e.Completed,
				StageCounts:  e.StageCounts,
			},
		})
	}
	return out, nil
}
