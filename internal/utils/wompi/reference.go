package wompi

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Gateway references follow the pattern ORDER-{uuid}-{timestamp}. The uuid is
// the order ID; the trailing timestamp only makes the reference unique per
// payment attempt.

const referencePrefix = "ORDER-"

// BuildReference creates a gateway reference for an order.
func BuildReference(orderID string, unixMillis int64) string {
	return fmt.Sprintf("%s%s-%d", referencePrefix, orderID, unixMillis)
}

// ParseReference extracts the order UUID from a gateway reference.
// It returns an error for anything that does not match the expected pattern,
// including references whose embedded ID is not a valid UUID.
func ParseReference(reference string) (string, error) {
	if !strings.HasPrefix(reference, referencePrefix) {
		return "", fmt.Errorf("reference %q does not start with %q", reference, referencePrefix)
	}
	rest := strings.TrimPrefix(reference, referencePrefix)

	// The uuid itself contains dashes, so split from the right.
	idx := strings.LastIndex(rest, "-")
	if idx <= 0 {
		return "", fmt.Errorf("reference %q is missing the timestamp segment", reference)
	}
	orderID := rest[:idx]

	if _, err := uuid.Parse(orderID); err != nil {
		return "", fmt.Errorf("reference %q does not contain a valid order id: %w", reference, err)
	}
	return orderID, nil
}
