package utils

import (
	"regexp"
	"strconv"
	"testing"
	"time"
)

func TestGenerateGRNNumber(t *testing.T) {
	ref := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^GRN-202608-(\d{3})$`)

	for i := 0; i < 100; i++ {
		got := GenerateGRNNumber(ref)
		m := pattern.FindStringSubmatch(got)
		if m == nil {
			t.Fatalf("GenerateGRNNumber() = %q, want GRN-202608-NNN", got)
		}
		serial, _ := strconv.Atoi(m[1])
		if serial < 100 || serial > 999 {
			t.Fatalf("serial %d out of range [100, 999]", serial)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Office Equipment", "office-equipment"},
		{"IT & Networking", "it-networking"},
		{"  Laptops  ", "laptops"},
		{"Heavy--Machinery", "heavy-machinery"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
