// Package wompi implements the payment gateway's webhook signature scheme and
// order reference format.
package wompi

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// ComputeSignature returns the hex HMAC-SHA256 of the transaction fields
// (sorted by key, values concatenated) followed by the timestamp, keyed with
// the shared events secret. Sorting makes the digest independent of the JSON
// field order the gateway happens to send.
func ComputeSignature(fields map[string]string, timestamp string, secret string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var payload strings.Builder
	for _, k := range keys {
		payload.WriteString(fields[k])
	}
	payload.WriteString(timestamp)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload.String()))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a received signature in constant time.
func VerifySignature(fields map[string]string, timestamp, signature, secret string) bool {
	expected := ComputeSignature(fields, timestamp, secret)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}
