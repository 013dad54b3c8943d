package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/internal/domain/repository"
	"github.com/primag/sales-api/pkg/logger"
	"github.com/primag/sales-api/pkg/pagination"
)

// AuditService records and queries the audit trail
type AuditService struct {
	auditRepo repository.AuditLogRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repository.AuditLogRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// RecordInput describes one auditable event.
type RecordInput struct {
	UserID      *uuid.UUID
	Action      enum.AuditAction
	EntityType  string
	EntityID    string
	EntityLabel string
	Description string
	OldValues   map[string]string
	NewValues   map[string]string
	IPAddress   string
	UserAgent   string
}

// Record appends an audit row. Failures are logged and swallowed so a
// broken audit sink never blocks the write being audited.
func (s *AuditService) Record(ctx context.Context, input RecordInput) {
	log := &entity.AuditLog{
		UserID:      input.UserID,
		Action:      input.Action,
		EntityType:  input.EntityType,
		EntityID:    input.EntityID,
		EntityLabel: input.EntityLabel,
		Description: input.Description,
		IPAddress:   input.IPAddress,
		UserAgent:   input.UserAgent,
	}

	if input.OldValues != nil {
		if raw, err := json.Marshal(input.OldValues); err == nil {
			log.OldValues = raw
		}
	}
	if input.NewValues != nil {
		if raw, err := json.Marshal(input.NewValues); err == nil {
			log.NewValues = raw
		}
	}
	if input.OldValues != nil && input.NewValues != nil {
		changes := entity.ComputeChanges(input.OldValues, input.NewValues)
		if len(changes) > 0 {
			if raw, err := json.Marshal(changes); err == nil {
				log.Changes = raw
			}
		}
	}

	if err := s.auditRepo.Create(ctx, log); err != nil {
		logger.Get().WithError(err).WithField("entity_type", input.EntityType).
			Warn("failed to record audit log")
	}
}

// ListLogs lists audit rows with pagination and filters
func (s *AuditService) ListLogs(ctx context.Context, params *pagination.PaginationParams, filter repository.AuditFilter) (*pagination.PaginatedResult[entity.AuditLog], error) {
	logs, total, err := s.auditRepo.List(ctx, params, filter)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(logs, pag), nil
}
