package api

import (
	"encoding/json"
	"net/http"
)

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the standard error envelope.
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, RequestID: RequestID(r.Context())})
}

type degreeResponse struct {
	Player    string `json:"player"`
	Target    string `json:"target"`
	Degree    int    `json:"degree"`
	RequestID string `json:"request_id"`
}

type pathResponse struct {
	Source    string   `json:"source"`
	Player    string   `json:"player"`
	Degree    int      `json:"degree"`
	Path      []string `json:"path"`
	RequestID string   `json:"request_id"`
}

type playersResponse struct {
	Prefix  string   `json:"prefix,omitempty"`
	Count   int      `json:"count"`
	Players []string `json:"players"`
}
