package middleware_test

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Chetan-Warad-CSYE6225/webapp/internal/domain"
	"github.com/Chetan-Warad-CSYE6225/webapp/internal/infrastructure/http/middleware"
)

type fakeUserRepo struct {
	users map[string]*domain.User
	err   error
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error { return nil }

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[email], nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Save(ctx context.Context, u *domain.User) error { return nil }

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) Verify(password, hash string) bool {
	return strings.TrimPrefix(hash, "hashed:") == password
}

func basic(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}

func doAuth(t *testing.T, repo *fakeUserRepo, authorization string) (*httptest.ResponseRecorder, *domain.User) {
	t.Helper()
	var seen *domain.User
	auth := middleware.NewBasicAuthenticator(repo, fakeHasher{}, zerolog.Nop())
	handler := auth.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/v1/user/self", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, seen
}

func TestBasicAuth_Success(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Email: "a@x.com", PasswordHash: "hashed:P1@aaaa"}
	repo := &fakeUserRepo{users: map[string]*domain.User{"a@x.com": user}}

	rec, seen := doAuth(t, repo, basic("a@x.com", "P1@aaaa"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	require.Equal(t, user.ID, seen.ID)
}

func TestBasicAuth_PasswordMayContainColons(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Email: "a@x.com", PasswordHash: "hashed:p:a:s:s"}
	repo := &fakeUserRepo{users: map[string]*domain.User{"a@x.com": user}}

	rec, _ := doAuth(t, repo, basic("a@x.com", "p:a:s:s"))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestBasicAuth_RejectionsAreUniform(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Email: "a@x.com", PasswordHash: "hashed:P1@aaaa"}
	repo := &fakeUserRepo{users: map[string]*domain.User{"a@x.com": user}}

	wrongSecret, _ := doAuth(t, repo, basic("a@x.com", "nope"))
	unknownUser, _ := doAuth(t, repo, basic("ghost@x.com", "nope"))

	// Unknown identity and wrong secret must be indistinguishable.
	require.Equal(t, http.StatusUnauthorized, wrongSecret.Code)
	require.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	require.Equal(t, wrongSecret.Body.String(), unknownUser.Body.String())
}

func TestBasicAuth_MalformedCredentials(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*domain.User{}}

	for name, header := range map[string]string{
		"missing header": "",
		"wrong scheme":   "Bearer abc",
		"bad base64":     "Basic !!!not-base64!!!",
		"no colon":       "Basic " + base64.StdEncoding.EncodeToString([]byte("nocolon")),
	} {
		t.Run(name, func(t *testing.T) {
			rec, seen := doAuth(t, repo, header)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.Nil(t, seen)
		})
	}
}

func TestBasicAuth_StoreFailureIsInternal(t *testing.T) {
	repo := &fakeUserRepo{err: errors.New("connection refused")}

	rec, _ := doAuth(t, repo, basic("a@x.com", "P1@aaaa"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
