package booking

import (
	"regexp"
	"testing"
)

var referencePattern = regexp.MustCompile(`^(STB|PAY)-\d{8}-[0-9A-F]{8}$`)

func TestReferences(t *testing.T) {
	ref := NewBookingReference()
	if !referencePattern.MatchString(ref) {
		t.Errorf("booking reference %q does not match expected shape", ref)
	}
	pay := NewPaymentReference()
	if !referencePattern.MatchString(pay) {
		t.Errorf("payment reference %q does not match expected shape", pay)
	}

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		r := NewBookingReference()
		if seen[r] {
			t.Fatalf("duplicate reference %q after %d generations", r, i)
		}
		seen[r] = true
	}
}
