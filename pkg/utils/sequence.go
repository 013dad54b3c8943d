package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SequentialNumber builds a dated document number such as
// SAL-20240315-00001. The sequence resets each calendar day.
func SequentialNumber(prefix string, day time.Time, sequence int64) string {
	return fmt.Sprintf("%s-%s-%05d", prefix, day.Format("20060102"), sequence)
}

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// Slugify converts a string to a URL-friendly slug
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")

	reg := regexp.MustCompile("[^a-z0-9-]")
	s = reg.ReplaceAllString(s, "")

	reg = regexp.MustCompile("-+")
	s = reg.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}

// GenerateSKU generates a unique stock keeping unit code
func GenerateSKU() string {
	return "ITM-" + strings.ToUpper(uuid.New().String()[:8])
}
