package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/field-service-api/internal/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeTokens map[string]string

func (f fakeTokens) Parse(token string) (string, error) {
	if userID, ok := f[token]; ok {
		return userID, nil
	}
	return "", errors.New("invalid token")
}

type fakeMembers struct {
	members map[string]bool
	err     error
}

func (f fakeMembers) IsMember(_ context.Context, companyID, userID string) (bool, error) {
	return f.members[companyID+"/"+userID], f.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(tokens TokenParser) *gin.Engine {
	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("secret"))))
	r.GET("/login/:id", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set(constants.ContextKeyUserID, c.Param("id"))
		_ = session.Save()
		c.Status(http.StatusNoContent)
	})
	r.GET("/me", RequireAuth(tokens), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.String(http.StatusOK, userID)
	})
	return r
}

func TestRequireAuth_Bearer(t *testing.T) {
	r := newAuthRouter(fakeTokens{"good": "user-1"})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", w.Body.String())
}

func TestRequireAuth_BadBearer(t *testing.T) {
	r := newAuthRouter(fakeTokens{})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer bad")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_Session(t *testing.T) {
	r := newAuthRouter(fakeTokens{})

	login := httptest.NewRecorder()
	r.ServeHTTP(login, httptest.NewRequest(http.MethodGet, "/login/user-2", nil))
	require.Equal(t, http.StatusNoContent, login.Code)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	for _, cookie := range login.Result().Cookies() {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-2", w.Body.String())
}

func TestRequireAuth_Anonymous(t *testing.T) {
	r := newAuthRouter(fakeTokens{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func newCompanyRouter(members MembershipChecker) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID := c.GetHeader("X-Test-User"); userID != "" {
			c.Set(constants.ContextKeyUserID, userID)
		}
		c.Next()
	})
	r.GET("/companies/:companyId", RequireCompanyAccess(members), func(c *gin.Context) {
		c.String(http.StatusOK, GetCompanyID(c))
	})
	return r
}

func TestRequireCompanyAccess(t *testing.T) {
	members := fakeMembers{members: map[string]bool{"c1/u1": true}}

	tests := []struct {
		name    string
		members MembershipChecker
		user    string
		want    int
	}{
		{"member", members, "u1", http.StatusOK},
		{"not a member", members, "u2", http.StatusNotFound},
		{"anonymous", members, "", http.StatusUnauthorized},
		{"lookup failure", fakeMembers{err: errors.New("db down")}, "u1", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newCompanyRouter(tt.members)
			req := httptest.NewRequest(http.MethodGet, "/companies/c1", nil)
			if tt.user != "" {
				req.Header.Set("X-Test-User", tt.user)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, "c1", w.Body.String())
			}
		})
	}
}

func TestRequestIDAndLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	r := gin.New()
	r.Use(RequestID(), Logger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	requestID := w.Header().Get("X-Request-ID")
	assert.NotEmpty(t, requestID)

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set("X-Request-ID", "given-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "given-id", w.Header().Get("X-Request-ID"))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, requestID, entries[0].ContextMap()["request_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "given-id", entries[1].ContextMap()["request_id"])
}
