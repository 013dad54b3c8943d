package enum

import "testing"

func TestParseTransactionType(t *testing.T) {
	if v, ok := ParseTransactionType("income"); !ok || v != TransactionTypeIncome {
		t.Errorf("income: got %v, %v", v, ok)
	}
	if v, ok := ParseTransactionType("expense"); !ok || v != TransactionTypeExpense {
		t.Errorf("expense: got %v, %v", v, ok)
	}
	if _, ok := ParseTransactionType("refund"); ok {
		t.Error("refund should not parse")
	}
	if _, ok := ParseTransactionType(""); ok {
		t.Error("empty string should not parse")
	}
}

func TestParseSaleStatusRoundTrips(t *testing.T) {
	statuses := []SaleStatus{
		SaleStatusDraft, SaleStatusConfirmed, SaleStatusDispatched,
		SaleStatusDelivered, SaleStatusCancelled, SaleStatusReturned,
	}
	for _, st := range statuses {
		got, ok := ParseSaleStatus(st.String())
		if !ok || got != st {
			t.Errorf("round trip %v: got %v, %v", st, got, ok)
		}
	}
	if _, ok := ParseSaleStatus("shipped"); ok {
		t.Error("shipped should not parse")
	}
}

func TestParseFrequencyRoundTrips(t *testing.T) {
	for _, f := range []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly} {
		got, ok := ParseFrequency(f.String())
		if !ok || got != f {
			t.Errorf("round trip %v: got %v, %v", f, got, ok)
		}
	}
	if _, ok := ParseFrequency("quarterly"); ok {
		t.Error("quarterly should not parse")
	}
}

func TestParseAuditAction(t *testing.T) {
	if v, ok := ParseAuditAction("permission_change"); !ok || v != AuditActionPermissionChange {
		t.Errorf("permission_change: got %v, %v", v, ok)
	}
	if _, ok := ParseAuditAction("promote"); ok {
		t.Error("promote should not parse")
	}
}

func TestParseMovementType(t *testing.T) {
	if v, ok := ParseMovementType("damage"); !ok || v != MovementTypeDamage {
		t.Errorf("damage: got %v, %v", v, ok)
	}
	if _, ok := ParseMovementType("loss"); ok {
		t.Error("loss should not parse")
	}
}
