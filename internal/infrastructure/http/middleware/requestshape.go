package middleware

import (
	"net/http"
	"sort"
	"strings"
)

// allowedHeaders are the request header keys accepted on strict routes,
// lower-cased. Keys with a recognized extension prefix pass as well.
var allowedHeaders = map[string]struct{}{
	"accept":          {},
	"accept-encoding": {},
	"accept-language": {},
	"authorization":   {},
	"cache-control":   {},
	"connection":      {},
	"content-length":  {},
	"content-type":    {},
	"host":            {},
	"origin":          {},
	"postman-token":   {},
	"pragma":          {},
	"referer":         {},
	"user-agent":      {},
}

var allowedPrefixes = []string{"x-", "sec-"}

// DisallowedHeaders returns the header keys outside the allow-list, sorted.
// It is a pure function over the header map.
func DisallowedHeaders(h http.Header) []string {
	var out []string
	for key := range h {
		k := strings.ToLower(key)
		if _, ok := allowedHeaders[k]; ok {
			continue
		}
		prefixed := false
		for _, p := range allowedPrefixes {
			if strings.HasPrefix(k, p) {
				prefixed = true
				break
			}
		}
		if !prefixed {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// HeaderAllowList rejects requests carrying headers outside the allow-list
// before they reach the account service.
func HeaderAllowList(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if bad := DisallowedHeaders(r.Header); len(bad) > 0 {
			writeErr(w, http.StatusBadRequest, "malformed_request",
				"unexpected header(s): "+strings.Join(bad, ", "))
			return
		}
		next.ServeHTTP(w, r)
	})
}
