package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TransactionType distinguishes income from expenditure entries
type TransactionType int

const (
	TransactionTypeIncome  TransactionType = 0
	TransactionTypeExpense TransactionType = 1
)

func (t TransactionType) String() string {
	names := [...]string{"income", "expense"}
	if int(t) < 0 || int(t) >= len(names) {
		return "income"
	}
	return names[t]
}

func (t TransactionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = TransactionType(i)
		return nil
	}
	switch str {
	case "income":
		*t = TransactionTypeIncome
	case "expense":
		*t = TransactionTypeExpense
	}
	return nil
}

func (t TransactionType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *TransactionType) Scan(value interface{}) error {
	if value == nil {
		*t = TransactionTypeIncome
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = TransactionType(v)
	case int:
		*t = TransactionType(v)
	}
	return nil
}

// PaymentMethod represents how a transaction was settled
type PaymentMethod int

const (
	PaymentMethodCash         PaymentMethod = 0
	PaymentMethodCheque       PaymentMethod = 1
	PaymentMethodBankTransfer PaymentMethod = 2
	PaymentMethodCreditCard   PaymentMethod = 3
	PaymentMethodOnline       PaymentMethod = 4
)

func (m PaymentMethod) String() string {
	names := [...]string{"cash", "cheque", "bank_transfer", "credit_card", "online"}
	if int(m) < 0 || int(m) >= len(names) {
		return "cash"
	}
	return names[m]
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	switch str {
	case "cash":
		*m = PaymentMethodCash
	case "cheque":
		*m = PaymentMethodCheque
	case "bank_transfer":
		*m = PaymentMethodBankTransfer
	case "credit_card":
		*m = PaymentMethodCreditCard
	case "online":
		*m = PaymentMethodOnline
	}
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	return nil
}
