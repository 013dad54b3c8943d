package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// MovementType represents the kind of inventory movement
type MovementType int

const (
	MovementTypePurchase   MovementType = 0
	MovementTypeSale       MovementType = 1
	MovementTypeReturn     MovementType = 2
	MovementTypeAdjustment MovementType = 3
	MovementTypeDamage     MovementType = 4
	MovementTypeTransfer   MovementType = 5
)

func (m MovementType) String() string {
	names := [...]string{"purchase", "sale", "return", "adjustment", "damage", "transfer"}
	if int(m) < 0 || int(m) >= len(names) {
		return "adjustment"
	}
	return names[m]
}

func (m MovementType) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *MovementType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = MovementType(i)
		return nil
	}
	switch str {
	case "purchase":
		*m = MovementTypePurchase
	case "sale":
		*m = MovementTypeSale
	case "return":
		*m = MovementTypeReturn
	case "adjustment":
		*m = MovementTypeAdjustment
	case "damage":
		*m = MovementTypeDamage
	case "transfer":
		*m = MovementTypeTransfer
	}
	return nil
}

func (m MovementType) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *MovementType) Scan(value interface{}) error {
	if value == nil {
		*m = MovementTypeAdjustment
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = MovementType(v)
	case int:
		*m = MovementType(v)
	}
	return nil
}
