package store

import (
	"context"
	"fmt"
	"time"

	"github.com/versekeep/versekeep/ent"
	entsession "github.com/versekeep/versekeep/ent/reviewsession"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Append(ctx context.Context, rec *SessionRecord) error {
	_, err := r.client.ReviewSession.Create().
		SetSessionID(rec.ID).
		SetDate(rec.Date).
		SetVersesReviewed(rec.VersesReviewed).
		SetCorrectAnswers(rec.CorrectAnswers).
		SetAverageQuality(rec.AverageQuality).
		SetTimeSpentMinutes(rec.TimeSpentMinutes).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session record: %w", err)
	}
	return nil
}

func (r *sessionRepo) List(ctx context.Context, from, to time.Time) ([]*SessionRecord, error) {
	q := r.client.ReviewSession.Query()
	if !from.IsZero() {
		q = q.Where(entsession.DateGTE(from))
	}
	if !to.IsZero() {
		q = q.Where(entsession.DateLTE(to))
	}

	rows, err := q.Order(ent.Asc(entsession.FieldDate)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list session records: %w", err)
	}

	out := make([]*SessionRecord, len(rows))
	for i, row := range rows {
		out[i] = &SessionRecord{
			ID:               row.SessionID,
			Date:             row.Date,
			VersesReviewed:   row.VersesReviewed,
			CorrectAnswers:   row.CorrectAnswers,
			AverageQuality:   row.AverageQuality,
			TimeSpentMinutes: row.TimeSpentMinutes,
		}
	}
	return out, nil
}
