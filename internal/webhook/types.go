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

// Headers consumed from a GitHub webhook delivery.
const (
	HeaderEvent     = "X-GitHub-Event"
	HeaderDelivery  = "X-GitHub-Delivery"
	HeaderSignature = "X-Hub-Signature"
)

// Event is a verified webhook delivery. It is created only after the
// signature check succeeded and is immutable thereafter; the dispatch path
// that created it owns it until the run it triggers completes.
type Event struct {
	Type       string
	DeliveryID string
	Payload    EventPayload
}

// EventPayload is the typed shape of a pull_request event body. Deliveries
// of other event types parse into zero values and are dropped by the
// dispatcher.
type EventPayload struct {
	Action      string      `json:"action"`
	Number      int         `json:"number"`
	PullRequest PullRequest `json:"pull_request"`
	Repository  Repository  `json:"repository"`
}

// PullRequest contains PR metadata.
type PullRequest struct {
	Number int    `json:"number"`
	Head   Ref    `json:"head"`
	Base   Ref    `json:"base"`
	Title  string `json:"title"`
	State  string `json:"state"`
}

// Ref represents a git reference, including the repository it lives in.
type Ref struct {
	Ref  string     `json:"ref"`
	SHA  string     `json:"sha"`
	Repo Repository `json:"repo"`
}

// Repository contains repository metadata.
type Repository struct {
	FullName string `json:"full_name"`
	Name     string `json:"name"`
	Owner    Owner  `json:"owner"`
}

// Owner represents the repository owner.
type Owner struct {
	Login string `json:"login"`
}
