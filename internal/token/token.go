// Package token generates random document id tokens.
package token

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// Length is the length of every generated token.
const Length = 22

// New returns a 22-character URL-safe token carrying the 122 random bits of
// a version 4 UUID. Collision probability is negligible for practical use;
// no uniqueness check is made anywhere.
func New() string {
	id := uuid.New()
	return base64.RawURLEncoding.EncodeToString(id[:])
}
