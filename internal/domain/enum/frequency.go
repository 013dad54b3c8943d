package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// Frequency represents a customer tracking / revenue rollup period
type Frequency int

const (
	FrequencyDaily   Frequency = 0
	FrequencyWeekly  Frequency = 1
	FrequencyMonthly Frequency = 2
	FrequencyYearly  Frequency = 3
)

func (f Frequency) String() string {
	names := [...]string{"daily", "weekly", "monthly", "yearly"}
	if int(f) < 0 || int(f) >= len(names) {
		return "monthly"
	}
	return names[f]
}

func (f Frequency) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *Frequency) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*f = Frequency(i)
		return nil
	}
	switch str {
	case "daily":
		*f = FrequencyDaily
	case "weekly":
		*f = FrequencyWeekly
	case "monthly":
		*f = FrequencyMonthly
	case "yearly":
		*f = FrequencyYearly
	}
	return nil
}

func (f Frequency) Value() (driver.Value, error) {
	return int64(f), nil
}

func (f *Frequency) Scan(value interface{}) error {
	if value == nil {
		*f = FrequencyMonthly
		return nil
	}
	switch v := value.(type) {
	case int64:
		*f = Frequency(v)
	case int:
		*f = Frequency(v)
	}
	return nil
}
