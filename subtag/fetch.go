/*
Copyright 2026 BCP47 Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package subtag

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// DefaultRegistryURL is the canonical location of the IANA Language Subtag
// Registry.
const DefaultRegistryURL = "https://www.iana.org/assignments/language-subtag-registry/language-subtag-registry"

// Fetcher supplies raw registry text for a refresh. Implementations own all
// transport policy (timeouts, retries); the Service only consumes the
// stream.
type Fetcher interface {
	Fetch(ctx context.Context) (io.ReadCloser, error)
}

// HTTPFetcher retrieves the registry over HTTP.
type HTTPFetcher struct {
	// URL of the registry file. Empty means DefaultRegistryURL.
	URL string
	// Client used for the request. Nil means http.DefaultClient; set a
	// client with a timeout for production use.
	Client *http.Client
}

// Fetch issues a GET for the registry and returns its body. The caller
// closes the returned reader.
func (f *HTTPFetcher) Fetch(ctx context.Context) (io.ReadCloser, error) {
	url := f.URL
	if url == "" {
		url = DefaultRegistryURL
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("building registry request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching registry: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching registry: unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}
