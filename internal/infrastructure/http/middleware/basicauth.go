package middleware

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Chetan-Warad-CSYE6225/webapp/internal/application/ports"
)

// BasicAuthenticator resolves per-request Basic credentials to a user record
// and attaches it to the context (see UserFromContext). Terminal outcomes:
// the request proceeds authenticated or is rejected; there is no retry.
type BasicAuthenticator struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	log    zerolog.Logger
}

func NewBasicAuthenticator(users ports.UserRepository, hasher ports.PasswordHasher, log zerolog.Logger) *BasicAuthenticator {
	return &BasicAuthenticator{users: users, hasher: hasher, log: log}
}

func (m *BasicAuthenticator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Basic ") {
			writeErr(w, http.StatusUnauthorized, "unauthorized", "authentication header missing or invalid")
			return
		}
		payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(auth, "Basic "))
		if err != nil {
			writeErr(w, http.StatusUnauthorized, "unauthorized", "authentication header missing or invalid")
			return
		}
		// identity:secret, split on the first colon only; the secret may
		// itself contain colons.
		email, password, ok := strings.Cut(string(payload), ":")
		if !ok {
			writeErr(w, http.StatusUnauthorized, "unauthorized", "authentication header missing or invalid")
			return
		}
		user, err := m.users.GetByEmail(r.Context(), email)
		if err != nil {
			m.log.Error().Err(err).Msg("auth lookup failed")
			writeErr(w, http.StatusInternalServerError, "internal_error", "internal error")
			return
		}
		// Unknown identity and wrong secret produce identical responses
		// so callers cannot enumerate accounts.
		if user == nil || !m.hasher.Verify(password, user.PasswordHash) {
			m.log.Warn().Str("path", r.URL.Path).Msg("rejected credentials")
			writeErr(w, http.StatusUnauthorized, "unauthorized", "invalid email or password")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}
