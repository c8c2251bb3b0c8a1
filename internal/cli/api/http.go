package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// do sends an HTTP request with an optional JSON payload. If token is
// non-empty, it is passed as a Bearer credential.
func do(method, url string, payload any, token string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	respBody, _ := io.ReadAll(resp.Body)
	return resp, respBody, nil
}

// GetJSON sends a GET request.
func GetJSON(url, token string) (*http.Response, []byte, error) {
	return do(http.MethodGet, url, nil, token)
}

// PostJSON sends a JSON POST request.
func PostJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	return do(http.MethodPost, url, payload, token)
}

// Delete sends a DELETE request.
func Delete(url, token string) (*http.Response, []byte, error) {
	return do(http.MethodDelete, url, nil, token)
}
