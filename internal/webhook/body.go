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
	"errors"
	"io"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// collectAndSign reads the request body exactly once, buffering it while
// feeding the identical bytes to the signer. Collection and digesting run
// as two concurrent tasks joined before returning; the body is teed into a
// pipe so the signer consumes the stream as it arrives instead of waiting
// for the full buffer.
func collectAndSign(body io.Reader, signer *Signer) (string, string, error) {
	pr, pw := io.Pipe()

	var (
		raw    []byte
		digest string
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		d, err := signer.Sum(pr)
		if err != nil {
			// Unblock the tee if the signer dies first.
			pr.CloseWithError(err)
			return err
		}
		digest = d
		return nil
	})
	g.Go(func() error {
		b, err := io.ReadAll(io.TeeReader(body, pw))
		if err != nil {
			pw.CloseWithError(err)
			return err
		}
		raw = b
		return pw.Close()
	})

	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return string(raw), digest, nil
}

// transportStatus maps a body-read failure to an HTTP status code,
// surfacing the upstream status where one is known.
func transportStatus(err error) int {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}
