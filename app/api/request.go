package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

// ErrMalformedBody is returned when a request body is not valid JSON for the target type.
var ErrMalformedBody = errors.New("invalid JSON body")

// ErrInvalidID is returned when a path id is not a positive integer.
var ErrInvalidID = errors.New("invalid id")

// ErrInvalidQuery is returned when a query string parameter cannot be parsed.
var ErrInvalidQuery = errors.New("invalid query parameter")

// DecodeJSON reads a single JSON document from the request body into dst.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("%w: trailing data after JSON document", ErrMalformedBody)
	}
	return nil
}

// PathID parses the {id} URL parameter.
func PathID(r *http.Request) (uint, error) {
	return ParseID(chi.URLParam(r, "id"))
}

// ParseID parses a positive integer id that fits a bigint column.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return uint(id), nil
}
