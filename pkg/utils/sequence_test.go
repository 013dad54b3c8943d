package utils

import (
	"strings"
	"testing"
	"time"
)

func TestSequentialNumber(t *testing.T) {
	day := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

	if got := SequentialNumber("SAL", day, 1); got != "SAL-20240315-00001" {
		t.Errorf("got %q, want SAL-20240315-00001", got)
	}
	if got := SequentialNumber("RCT", day, 12345); got != "RCT-20240315-12345" {
		t.Errorf("got %q, want RCT-20240315-12345", got)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Office Supplies", "office-supplies"},
		{"  Spare Parts & Tools  ", "spare-parts-tools"},
		{"Already-slugged", "already-slugged"},
		{"UPPER case 123", "upper-case-123"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGenerateSKU(t *testing.T) {
	sku := GenerateSKU()
	if !strings.HasPrefix(sku, "ITM-") {
		t.Errorf("sku %q missing ITM- prefix", sku)
	}
	if len(sku) != 12 {
		t.Errorf("sku %q has length %d, want 12", sku, len(sku))
	}
	if sku == GenerateSKU() {
		t.Error("two generated SKUs collided")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong-pass", hash) {
		t.Error("wrong password accepted")
	}
}
