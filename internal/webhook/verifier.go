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
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// deniedSignature is the literal body sent on a signature mismatch.
const deniedSignature = "Invalid signature: denying request."

// Verifier authenticates webhook deliveries against the shared secret.
type Verifier struct {
	signer *Signer
	logger *zap.Logger
}

// NewVerifier creates a verifier for the given secret.
func NewVerifier(secret []byte, logger *zap.Logger) *Verifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Verifier{signer: NewSigner(secret), logger: logger}
}

// Verify authenticates one delivery. Body collection and signature
// computation run concurrently over the same stream; the signatures are
// then compared in constant time, and only a verified body is parsed.
//
// Denial responses (transport failure, signature mismatch, malformed
// payload — three distinct classes) are written here and ok is false. On
// success nothing is written: the caller replies and may do so immediately,
// without waiting on any downstream processing.
func (v *Verifier) Verify(w http.ResponseWriter, r *http.Request) (event *Event, ok bool) {
	defer r.Body.Close()

	deliveryID := r.Header.Get(HeaderDelivery)

	body, digest, err := collectAndSign(r.Body, v.signer)
	if err != nil {
		v.logger.Error("failed to read delivery body", zap.String("delivery_id", deliveryID), zap.Error(err))
		http.Error(w, "failed to read request body", transportStatus(err))
		return nil, false
	}

	if !SignaturesEqual(digest, r.Header.Get(HeaderSignature)) {
		v.logger.Warn("invalid signature: denying request", zap.String("delivery_id", deliveryID))
		http.Error(w, deniedSignature, http.StatusForbidden)
		return nil, false
	}

	var payload EventPayload
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		v.logger.Error("malformed payload in verified delivery", zap.String("delivery_id", deliveryID), zap.Error(err))
		http.Error(w, "malformed payload", http.StatusBadRequest)
		return nil, false
	}

	return &Event{
		Type:       r.Header.Get(HeaderEvent),
		DeliveryID: deliveryID,
		Payload:    payload,
	}, true
}
