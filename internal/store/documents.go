package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// documentRepo implements BlobStore on the documents table.
type documentRepo struct {
	drv *entsql.Driver
	now func() time.Time
}

func (r *documentRepo) Load(ctx context.Context, key string) ([]byte, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("data").
		From(entsql.Table(documentsTable)).
		Where(entsql.EQ("name", key)).
		Limit(1).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query document %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("read document %q: %w", key, err)
		}
		return nil, ErrNotFound
	}

	var data []byte
	if err := rows.Scan(&data); err != nil {
		return nil, fmt.Errorf("scan document %q: %w", key, err)
	}
	return data, nil
}

func (r *documentRepo) Save(ctx context.Context, key string, data []byte) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(documentsTable).
		Columns("name", "data", "updated_at").
		Values(key, data, r.now().UTC()).
		OnConflict(
			entsql.ConflictColumns("name"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save document %q: %w", key, err)
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	values := make([]any, len(keys))
	for i, k := range keys {
		values[i] = k
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Delete(documentsTable).
		Where(entsql.In("name", values...)).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete documents: %w", err)
	}
	return nil
}
