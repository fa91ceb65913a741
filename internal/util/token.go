package util

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// RandomToken returns the 16 bytes of a random (version 4) UUID rendered in
// base64url (standard base64 with + and / swapped for - and _); 122 of the
// 128 bits are random, the version and variant bits are fixed. Padding is kept as produced.
// The RabbitMQ dialect uses these tokens as opaque subscription payloads.
func RandomToken() string {
	u := uuid.New()
	return base64.URLEncoding.EncodeToString(u[:])
}
