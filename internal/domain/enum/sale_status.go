package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SaleStatus represents the lifecycle status of a sale
type SaleStatus int

const (
	SaleStatusDraft      SaleStatus = 0
	SaleStatusConfirmed  SaleStatus = 1
	SaleStatusDispatched SaleStatus = 2
	SaleStatusDelivered  SaleStatus = 3
	SaleStatusCancelled  SaleStatus = 4
	SaleStatusReturned   SaleStatus = 5
)

func (s SaleStatus) String() string {
	names := [...]string{"draft", "confirmed", "dispatched", "delivered", "cancelled", "returned"}
	if int(s) < 0 || int(s) >= len(names) {
		return "draft"
	}
	return names[s]
}

// CountsTowardRevenue reports whether sales in this status are included in
// revenue rollups and dashboard figures.
func (s SaleStatus) CountsTowardRevenue() bool {
	return s == SaleStatusConfirmed || s == SaleStatusDispatched || s == SaleStatusDelivered
}

func (s SaleStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SaleStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = SaleStatus(i)
		return nil
	}
	switch str {
	case "draft":
		*s = SaleStatusDraft
	case "confirmed":
		*s = SaleStatusConfirmed
	case "dispatched":
		*s = SaleStatusDispatched
	case "delivered":
		*s = SaleStatusDelivered
	case "cancelled":
		*s = SaleStatusCancelled
	case "returned":
		*s = SaleStatusReturned
	}
	return nil
}

func (s SaleStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *SaleStatus) Scan(value interface{}) error {
	if value == nil {
		*s = SaleStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = SaleStatus(v)
	case int:
		*s = SaleStatus(v)
	}
	return nil
}
