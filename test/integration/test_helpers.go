//go:build integration

// functions that are useful in integration tests

package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/shelfstack/bookstore/internal/books"
)

// bookPayload is a loosely-typed request body so tests can omit fields or
// inject unknown ones
type bookPayload map[string]any

// validBookPayload returns a complete, valid create payload
func validBookPayload() bookPayload {
	return bookPayload{
		"isbn":       "0691161518",
		"amazon_url": "http://a.co/eobPtX2",
		"author":     "Matthew Lane",
		"language":   "english",
		"pages":      264,
		"publisher":  "Princeton University Press",
		"title":      "Power-Up",
		"year":       2017,
	}
}

// doJSON sends a request with a JSON body and returns the response
func doJSON(t *testing.T, method, url string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

// decodeBody decodes the response body into dst and closes it
func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

// requireStatus fails the test if the response status is unexpected,
// including the body in the failure message
func requireStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()

	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		t.Fatalf("expected status %d, got %d. Response: %s", want, resp.StatusCode, string(body))
	}
}

// createBook creates a book via the API and fails the test on any error
func createBook(t *testing.T, baseURL string, payload bookPayload) books.Book {
	t.Helper()

	resp := doJSON(t, http.MethodPost, baseURL+"/books", payload)
	requireStatus(t, resp, http.StatusCreated)

	var created books.BookResponse
	decodeBody(t, resp, &created)
	return created.Book
}

// getBook fetches a book by isbn, expecting 200
func getBook(t *testing.T, baseURL, isbn string) books.Book {
	t.Helper()

	resp := doJSON(t, http.MethodGet, baseURL+"/books/"+isbn, nil)
	requireStatus(t, resp, http.StatusOK)

	var fetched books.BookResponse
	decodeBody(t, resp, &fetched)
	return fetched.Book
}
