package models

import "time"

// AuditEvent is a single entry in the item-lifecycle audit trail.
type AuditEvent struct {
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Action     string    `json:"action"` // ITEM_CREATED | ITEM_UPDATED | ITEM_DELETED
	Actor      string    `json:"actor"`  // username from the request's token
	ItemID     int       `json:"item_id"`
	Detail     string    `json:"detail"` // human-readable
}
