package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// setEventRepo implements SetEventRepo on the set_events table.
type setEventRepo struct {
	drv *entsql.Driver
	now func() time.Time
}

func (r *setEventRepo) AppendSetEvent(ctx context.Context, data SetEventData) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(setEventsTable).
		Columns("set_id", "topic_id", "correct", "total", "points_earned",
			"old_level", "new_level", "streak", "recorded_at").
		Values(data.SetID, data.TopicID, data.Correct, data.Total, data.PointsEarned,
			data.OldLevel, data.NewLevel, data.Streak, r.now().UTC()).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save set event: %w", err)
	}
	return nil
}

func (r *setEventRepo) QuerySetEvents(ctx context.Context, opts QueryOpts) ([]SetEvent, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("id", "set_id", "topic_id", "correct", "total", "points_earned",
			"old_level", "new_level", "streak", "recorded_at").
		From(entsql.Table(setEventsTable)).
		OrderBy(entsql.Desc("id"))
	if opts.TopicID != "" {
		sel.Where(entsql.EQ("topic_id", opts.TopicID))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query set events: %w", err)
	}
	defer rows.Close()

	var events []SetEvent
	for rows.Next() {
		var e SetEvent
		if err := rows.Scan(&e.ID, &e.SetID, &e.TopicID, &e.Correct, &e.Total,
			&e.PointsEarned, &e.OldLevel, &e.NewLevel, &e.Streak, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan set event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read set events: %w", err)
	}
	return events, nil
}

func (r *setEventRepo) ClearSetEvents(ctx context.Context) error {
	query, args := entsql.Dialect(dialect.SQLite).Delete(setEventsTable).Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("clear set events: %w", err)
	}
	return nil
}
