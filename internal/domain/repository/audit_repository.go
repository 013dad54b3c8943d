package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/pkg/pagination"
)

// AuditFilter narrows audit log listings.
type AuditFilter struct {
	UserID     *uuid.UUID
	Action     *enum.AuditAction
	EntityType string
	DateFrom   *time.Time
	DateTo     *time.Time
}

// AuditLogRepository defines the interface for audit log data operations.
// The log is append-only: there are no update or delete operations.
type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	List(ctx context.Context, params *pagination.PaginationParams, filter AuditFilter) ([]entity.AuditLog, int64, error)
}
