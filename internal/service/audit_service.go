package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"item-api/internal/models"
	"item-api/internal/repository"
)

// AuditFilter narrows audit listings by time range and action.
type AuditFilter struct {
	From   time.Time // inclusive; zero means no lower bound
	To     time.Time // inclusive; zero means no upper bound
	Action string    // "", ITEM_CREATED, ITEM_UPDATED, ITEM_DELETED
}

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

type AuditService struct {
	audit repository.Audit
}

func NewAuditService(audit repository.Audit) *AuditService {
	return &AuditService{audit: audit}
}

func (s *AuditService) List(ctx context.Context, f AuditFilter) ([]models.AuditEvent, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, errInvalidTimeRange
	}
	action := strings.ToUpper(strings.TrimSpace(f.Action))
	return s.audit.List(ctx, from, to, action)
}

// normalizeToUTC returns t in UTC, preserving zero values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
