package wompi_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sazonapp/pos_backend/internal/utils/wompi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSignature_FieldOrderIndependent(t *testing.T) {
	secret := "test_events_secret"
	a := map[string]string{"id": "txn-1", "status": "APPROVED", "amount_in_cents": "5000000"}
	b := map[string]string{"amount_in_cents": "5000000", "id": "txn-1", "status": "APPROVED"}

	assert.Equal(t,
		wompi.ComputeSignature(a, "1700000000", secret),
		wompi.ComputeSignature(b, "1700000000", secret),
	)
}

func TestVerifySignature(t *testing.T) {
	secret := "test_events_secret"
	fields := map[string]string{"id": "txn-1", "status": "APPROVED"}
	sig := wompi.ComputeSignature(fields, "1700000000", secret)

	assert.True(t, wompi.VerifySignature(fields, "1700000000", sig, secret))

	// Tampered field
	fields["status"] = "DECLINED"
	assert.False(t, wompi.VerifySignature(fields, "1700000000", sig, secret))

	// Tampered timestamp
	fields["status"] = "APPROVED"
	assert.False(t, wompi.VerifySignature(fields, "1700000001", sig, secret))

	// Wrong secret
	assert.False(t, wompi.VerifySignature(fields, "1700000000", sig, "other_secret"))
}

func TestParseReference(t *testing.T) {
	orderID := uuid.NewString()
	ref := wompi.BuildReference(orderID, 1700000000123)

	got, err := wompi.ParseReference(ref)
	require.NoError(t, err)
	assert.Equal(t, orderID, got)
}

func TestParseReference_Malformed(t *testing.T) {
	cases := []string{
		"",
		"ORDER-",
		"ORDER-not-a-uuid-123",
		"PAYMENT-" + uuid.NewString() + "-123",
		"ORDER-" + uuid.NewString(), // missing timestamp
	}
	for _, ref := range cases {
		_, err := wompi.ParseReference(ref)
		assert.Error(t, err, "reference %q should be rejected", ref)
	}
}
