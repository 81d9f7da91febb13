// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package webclient

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/pkg/errors"
)

func ParseJsonResponse(resp *http.Response, v any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return errors.Errorf("query returned error code %d (%s)", resp.StatusCode, b)
	}

	m, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || m != "application/json" {
		return errors.Errorf("invalid content type %s", resp.Header.Get("Content-Type"))
	}

	return errors.Wrap(json.NewDecoder(resp.Body).Decode(v), "invalid json response")
}

// GetJson requests url within the budget of limiter and decodes the response into v.
func GetJson(ctx context.Context, client *http.Client, limiter *RateLimiter, url string, v any) error {
	for {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return errors.Wrap(err, "invalid request")
		}
		resp, err := client.Do(req)
		if err != nil {
			return errors.Wrap(err, "request failed")
		}
		retry, err := limiter.HandleResponseHeadersWithWait(ctx, resp)
		if err != nil || retry {
			resp.Body.Close()
			if err != nil {
				return err
			}
			continue
		}
		err = ParseJsonResponse(resp, v)
		resp.Body.Close()
		return err
	}
}
