package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/domain/enum"
	"gorm.io/gorm"
)

// AuditLog is an append-only record of a data mutation or access event.
// Rows are never updated or deleted by application code.
type AuditLog struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID     *uuid.UUID       `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action     enum.AuditAction `gorm:"not null;index" json:"action"`
	EntityType string           `gorm:"size:100;not null;index" json:"entity_type"`
	EntityID   string           `gorm:"size:100" json:"entity_id"`
	// EntityLabel is a display name for the record, such as a sale
	// number or customer name, so the trail reads without a lookup.
	EntityLabel string          `gorm:"size:255" json:"entity_label"`
	Description string          `gorm:"size:255" json:"description"`
	OldValues   json.RawMessage `gorm:"type:jsonb" json:"old_values,omitempty"`
	NewValues   json.RawMessage `gorm:"type:jsonb" json:"new_values,omitempty"`
	Changes     json.RawMessage `gorm:"type:jsonb" json:"changes,omitempty"`
	IPAddress   string          `gorm:"size:45" json:"ip_address"`
	UserAgent   string          `gorm:"size:255" json:"user_agent"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// BeforeCreate generates a UUID before creating a new audit log
func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}

// FieldChange holds a single before/after pair inside an audit diff.
type FieldChange struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// ComputeChanges diffs two field snapshots. A key appears in the result
// only when it exists in both snapshots with differing values; added or
// removed keys are covered by the full old/new captures instead.
func ComputeChanges(oldVals, newVals map[string]string) map[string]FieldChange {
	changes := make(map[string]FieldChange)
	for k, ov := range oldVals {
		if nv, ok := newVals[k]; ok && nv != ov {
			changes[k] = FieldChange{Old: ov, New: nv}
		}
	}
	return changes
}
