package cachehttp

import (
	"github.com/tidwall/gjson"
)

// Response is a fully-consumed HTTP response from the cache service.
type Response struct {
	StatusCode int
	Status     string
	rawBody    []byte
}

// Body returns the raw response body.
func (r *Response) Body() []byte {
	return r.rawBody
}

// Field extracts a JSON field from the response body by gjson path.
// Returns an empty string when the body is not JSON or the path is absent.
func (r *Response) Field(path string) string {
	return gjson.GetBytes(r.rawBody, path).String()
}

// IsSuccess returns true if the response status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
