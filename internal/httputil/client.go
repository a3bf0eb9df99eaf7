// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the source adapters.
package httputil

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
)

// Get performs a GET request with the given User-Agent and returns the
// response. A non-200 status is an error; the body is closed in that case.
// The caller owns the body on success.
func Get(ctx context.Context, client *http.Client, url, userAgent string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	return resp, nil
}

// GetJSON performs a GET request and decodes the JSON response body into v.
func GetJSON(ctx context.Context, client *http.Client, url, userAgent string, v any) error {
	resp, err := Get(ctx, client, url, userAgent)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("parsing JSON response: %w", err)
	}
	return nil
}

// GetXML performs a GET request and decodes the XML response body into v.
func GetXML(ctx context.Context, client *http.Client, url, userAgent string, v any) error {
	resp, err := Get(ctx, client, url, userAgent)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := xml.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("parsing XML response: %w", err)
	}
	return nil
}
