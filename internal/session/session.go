// Package session holds the puzzle site's session credential.
//
// The credential is loaded once at startup and passed explicitly to the
// components that need it. It is never mutated and never logged; use
// Fingerprint when a stable, non-secret identifier is needed.
package session

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zeebo/blake3"
)

// fingerprintKey is the BLAKE3 keyed-hash key for session fingerprints:
// the ASCII domain name zero-padded to 32 bytes.
var fingerprintKey = [32]byte{
	'a', 'd', 'v', 'e', 'n', 't', '.', 's', 'e', 's', 's', 'i', 'o', 'n', '.',
	'f', 'i', 'n', 'g', 'e', 'r', 'p', 'r', 'i', 'n', 't', 0, 0, 0, 0, 0, 0,
}

// Credential is an opaque session token. The zero value means no credential.
type Credential struct {
	token string
}

// New wraps a raw token, trimming surrounding whitespace.
func New(token string) Credential {
	return Credential{token: strings.TrimSpace(token)}
}

// Load resolves the credential: an explicit token wins, otherwise the
// contents of file are used. A missing file yields an empty credential so
// the harness can still run from cache.
func Load(token, file string) (Credential, error) {
	if c := New(token); c.Present() {
		return c, nil
	}
	if file == "" {
		return Credential{}, nil
	}
	data, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return Credential{}, nil
	}
	if err != nil {
		return Credential{}, fmt.Errorf("failed to read session file %s: %w", file, err)
	}
	return New(string(data)), nil
}

// Present reports whether a token is available.
func (c Credential) Present() bool {
	return c.token != ""
}

// Token returns the raw token for use in the session cookie.
func (c Credential) Token() string {
	return c.token
}

// Fingerprint returns the first 16 hex characters of a keyed BLAKE3 hash
// of the token, or "" when no credential is present.
func (c Credential) Fingerprint() string {
	if !c.Present() {
		return ""
	}
	hasher, err := blake3.NewKeyed(fingerprintKey[:])
	if err != nil {
		panic("session: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write([]byte(c.token))
	return hex.EncodeToString(hasher.Sum(nil)[:8])
}

// String never reveals the token.
func (c Credential) String() string {
	if !c.Present() {
		return "session(none)"
	}
	return "session(" + c.Fingerprint() + ")"
}
