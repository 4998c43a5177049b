package middleware

import (
	"encoding/json"
	"net/http"
)

// writeErr sends the same JSON error envelope the handlers package uses.
func writeErr(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": errCode})
}
