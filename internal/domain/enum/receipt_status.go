package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ReceiptStatus represents the status of an issued receipt
type ReceiptStatus int

const (
	ReceiptStatusDraft     ReceiptStatus = 0
	ReceiptStatusIssued    ReceiptStatus = 1
	ReceiptStatusCancelled ReceiptStatus = 2
)

func (s ReceiptStatus) String() string {
	names := [...]string{"draft", "issued", "cancelled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "draft"
	}
	return names[s]
}

func (s ReceiptStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ReceiptStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ReceiptStatus(i)
		return nil
	}
	switch str {
	case "draft":
		*s = ReceiptStatusDraft
	case "issued":
		*s = ReceiptStatusIssued
	case "cancelled":
		*s = ReceiptStatusCancelled
	}
	return nil
}

func (s ReceiptStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ReceiptStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ReceiptStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ReceiptStatus(v)
	case int:
		*s = ReceiptStatus(v)
	}
	return nil
}
