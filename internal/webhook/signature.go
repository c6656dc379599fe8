// Copyright 2026 The Buzzhook Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package webhook

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
)

// SignatureScheme is the tag GitHub prepends to the hex digest in the
// X-Hub-Signature header.
const SignatureScheme = "sha1="

// Signer computes keyed HMAC-SHA1 digests over byte streams. The key is
// the shared webhook secret, read-only for the process lifetime; it must
// never be logged or transmitted.
type Signer struct {
	key []byte
}

// NewSigner creates a signer for the given secret.
func NewSigner(secret []byte) *Signer {
	return &Signer{key: append([]byte(nil), secret...)}
}

// Sum streams r to completion and returns the lowercase hex HMAC-SHA1 of
// everything read. A stream error is returned as such, never collapsed
// into the digest of whatever was read so far.
func (s *Signer) Sum(r io.Reader) (string, error) {
	mac := hmac.New(sha1.New, s.key)
	if _, err := io.Copy(mac, r); err != nil {
		return "", fmt.Errorf("signing stream: %w", err)
	}
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// SignaturesEqual compares the scheme-tagged computed digest against the
// raw header value in constant time. hmac.Equal runs in time independent
// of the position of the first differing byte; a length mismatch is
// decided without inspecting content.
func SignaturesEqual(digest, header string) bool {
	return hmac.Equal([]byte(SignatureScheme+digest), []byte(header))
}
