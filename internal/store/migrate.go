package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	documentsTable = "documents"
	setEventsTable = "set_events"
)

var (
	// documentsColumns holds one whole JSON blob per key.
	documentsColumns = []*schema.Column{
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "data", Type: field.TypeBytes},
		{Name: "updated_at", Type: field.TypeTime},
	}
	documentsTableDef = &schema.Table{
		Name:       documentsTable,
		Columns:    documentsColumns,
		PrimaryKey: []*schema.Column{documentsColumns[0]},
	}

	// setEventsColumns is the append-only log of completed sets.
	setEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "set_id", Type: field.TypeString, Unique: true},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "correct", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "points_earned", Type: field.TypeInt},
		{Name: "old_level", Type: field.TypeInt},
		{Name: "new_level", Type: field.TypeInt},
		{Name: "streak", Type: field.TypeInt},
		{Name: "recorded_at", Type: field.TypeTime},
	}
	setEventsTableDef = &schema.Table{
		Name:       setEventsTable,
		Columns:    setEventsColumns,
		PrimaryKey: []*schema.Column{setEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "setevent_topic_id",
				Unique:  false,
				Columns: []*schema.Column{setEventsColumns[2]},
			},
		},
	}

	tables = []*schema.Table{documentsTableDef, setEventsTableDef}
)

// migrate creates or upgrades every table the store owns.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	return m.Create(ctx, tables...)
}
