package entity

import "testing"

func TestComputeChangesReportsDifferingKeys(t *testing.T) {
	oldVals := map[string]string{"amount": "100.00", "status": "draft", "notes": "x"}
	newVals := map[string]string{"amount": "150.00", "status": "draft", "notes": "x"}

	changes := ComputeChanges(oldVals, newVals)
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}
	ch, ok := changes["amount"]
	if !ok {
		t.Fatal("missing change for amount")
	}
	if ch.Old != "100.00" || ch.New != "150.00" {
		t.Errorf("amount change = %+v", ch)
	}
}

func TestComputeChangesIgnoresAddedAndRemovedKeys(t *testing.T) {
	oldVals := map[string]string{"a": "1", "removed": "x"}
	newVals := map[string]string{"a": "1", "added": "y"}

	if changes := ComputeChanges(oldVals, newVals); len(changes) != 0 {
		t.Errorf("expected no changes, got %v", changes)
	}
}
