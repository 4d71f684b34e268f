package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// ErrorResponse is the error envelope returned by every endpoint.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error messages
	// example: ["Username already exists"]
	Errors []string `json:"errors"`
}

// writeJSON writes a JSON body with the given status code.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError writes the {errors:[...]} envelope.
func writeError(w http.ResponseWriter, status int, messages ...string) {
	writeJSON(w, status, ErrorResponse{Errors: messages})
}

// optionalString returns the form/query parameter, or nil when absent or empty.
func optionalString(r *http.Request, key string) *string {
	if v := r.FormValue(key); v != "" {
		return &v
	}
	return nil
}

// optionalInt parses an optional integer form/query parameter.
func optionalInt(r *http.Request, key string) (*int, error) {
	v := r.FormValue(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// optionalBool parses an optional boolean form/query parameter. Absence
// means "leave unchanged", never false.
func optionalBool(r *http.Request, key string) (*bool, error) {
	v := r.FormValue(key)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
