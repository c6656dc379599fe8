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

// Package webhook implements the delivery ingestion and verification
// pipeline.
//
// A delivery is processed in this order:
//
//  1. The request body is read once, concurrently buffered and fed through
//     the HMAC-SHA1 signer (two tasks joined before anything else happens).
//  2. The scheme-tagged digest is compared against the X-Hub-Signature
//     header in constant time. A mismatch is denied with 403 and the body
//     is never parsed.
//  3. Only a verified body is unmarshalled; a parse failure is its own
//     denial class, distinct from a signature failure.
//  4. The handler acknowledges with 200 "OK" — also for verified events
//     that turn out to be ineligible — and the dispatcher then starts the
//     check run on a separate goroutine with a fresh context.
//
// Error classes map to responses: body/transport failure → 5xx (or the
// upstream status where known), signature mismatch → 403 with a fixed
// literal, malformed payload → 400. Delivery IDs are logged for
// correlation but not deduplicated.
//
// The shared secret is held read-only by the signer for the process
// lifetime and is never logged. It must be the same value used when
// registering the hook.
package webhook
