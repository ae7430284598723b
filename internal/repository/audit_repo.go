package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"item-api/internal/models"

	"github.com/google/uuid"
)

type AuditSQLite struct {
	db *sql.DB
}

func NewAuditSQLite(db *sql.DB) *AuditSQLite { return &AuditSQLite{db: db} }

var _ Audit = (*AuditSQLite)(nil)

// sqliteTimeLayout is how occurred_at is stored. Range bounds must be bound
// in the same layout so the TEXT comparison in the WHERE clause stays
// chronological; the layout sorts lexicographically in time order.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// Append inserts a new audit event. Empty EventID/OccurredAt are filled in.
func (r *AuditSQLite) Append(ctx context.Context, e models.AuditEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO audit_events (id, occurred_at, action, actor, item_id, detail)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		e.EventID,
		e.OccurredAt.Format(sqliteTimeLayout),
		strings.ToUpper(strings.TrimSpace(e.Action)),
		e.Actor,
		e.ItemID,
		e.Detail,
	)
	return err
}

// List returns events within [from, to] (inclusive) and/or matching action,
// ordered by occurrence.
func (r *AuditSQLite) List(ctx context.Context, from, to time.Time, action string) ([]models.AuditEvent, error) {
	var (
		conds []string
		args  []any
	)

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC().Format(sqliteTimeLayout))
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC().Format(sqliteTimeLayout))
	}
	if action = strings.ToUpper(strings.TrimSpace(action)); action != "" {
		conds = append(conds, "action = ?")
		args = append(args, action)
	}

	q := `SELECT id, occurred_at, action, actor, item_id, detail FROM audit_events`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.AuditEvent, 0, 64)
	for rows.Next() {
		var ev models.AuditEvent
		if err := rows.Scan(&ev.EventID, &ev.OccurredAt, &ev.Action, &ev.Actor, &ev.ItemID, &ev.Detail); err != nil {
			return nil, err
		}
		ev.OccurredAt = ev.OccurredAt.UTC()
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
