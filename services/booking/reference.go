package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newReference builds a date-prefixed identifier: sortable by day, legible on
// an invoice, collision-resistant with no coordination between creators.
func newReference(prefix string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().UTC().Format("20060102"), suffix)
}

// NewBookingReference generates a unique booking reference (e.g. STB-20260215-9F3A21BC).
func NewBookingReference() string {
	return newReference("STB")
}

// NewPaymentReference generates a unique payment reference (e.g. PAY-20260215-4E1D77A0).
func NewPaymentReference() string {
	return newReference("PAY")
}
