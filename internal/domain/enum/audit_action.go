package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// AuditAction represents the kind of event recorded in the audit trail
type AuditAction int

const (
	AuditActionCreate           AuditAction = 0
	AuditActionUpdate           AuditAction = 1
	AuditActionDelete           AuditAction = 2
	AuditActionView             AuditAction = 3
	AuditActionExport           AuditAction = 4
	AuditActionLogin            AuditAction = 5
	AuditActionLogout           AuditAction = 6
	AuditActionPermissionChange AuditAction = 7
)

func (a AuditAction) String() string {
	names := [...]string{"create", "update", "delete", "view", "export", "login", "logout", "permission_change"}
	if int(a) < 0 || int(a) >= len(names) {
		return "view"
	}
	return names[a]
}

func (a AuditAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *AuditAction) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*a = AuditAction(i)
		return nil
	}
	switch str {
	case "create":
		*a = AuditActionCreate
	case "update":
		*a = AuditActionUpdate
	case "delete":
		*a = AuditActionDelete
	case "view":
		*a = AuditActionView
	case "export":
		*a = AuditActionExport
	case "login":
		*a = AuditActionLogin
	case "logout":
		*a = AuditActionLogout
	case "permission_change":
		*a = AuditActionPermissionChange
	}
	return nil
}

func (a AuditAction) Value() (driver.Value, error) {
	return int64(a), nil
}

func (a *AuditAction) Scan(value interface{}) error {
	if value == nil {
		*a = AuditActionView
		return nil
	}
	switch v := value.(type) {
	case int64:
		*a = AuditAction(v)
	case int:
		*a = AuditAction(v)
	}
	return nil
}
