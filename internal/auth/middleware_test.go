package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/mergington/internal/session"
)

type singleTeacher struct{}

func (singleTeacher) Teachers() ([]session.Credentials, error) {
	return []session.Credentials{{Username: "alice", Password: "pw1"}}, nil
}

func TestWrapRejectsMissingAndForgedTokens(t *testing.T) {
	sessions := session.NewStore(singleTeacher{})
	mw := NewMiddleware(sessions)

	called := false
	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	for _, token := range []string{"", "forged-token"} {
		req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
		if token != "" {
			req.Header.Set(TokenHeader, token)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		require.Contains(t, rr.Body.String(), "Teacher login required")
		require.False(t, called)
	}
}

func TestWrapStoresTeacherInContext(t *testing.T) {
	sessions := session.NewStore(singleTeacher{})
	mw := NewMiddleware(sessions)

	token, err := sessions.Login("alice", "pw1")
	require.NoError(t, err)

	var got string
	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, ok := FromContext(r.Context())
		require.True(t, ok)
		got = username
	}))

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set(TokenHeader, token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "alice", got)
}
