package middleware

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "super-secret-jwt-token-with-at-least-32-characters"
	testIssuer = "https://example.supabase.co/auth/v1"
	testUser   = "6c1f3b3e-3c2d-4d7e-9b8a-1f2e3d4c5b6a"
)

func mint(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func validClaims() jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   testUser,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
}

func newAuthApp() *fiber.App {
	app := fiber.New()
	app.Use(RequireIdentity(NewJWTResolver(testSecret, testIssuer)))
	app.Get("/me", func(c *fiber.Ctx) error {
		return c.SendString(UserID(c))
	})
	return app
}

func call(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestRequireIdentityAcceptsBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+mint(t, testSecret, validClaims()))

	status, body := call(t, newAuthApp(), req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, testUser, body)
}

func TestRequireIdentityAcceptsSessionCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "sb-access-token", Value: mint(t, testSecret, validClaims())})

	status, body := call(t, newAuthApp(), req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, testUser, body)
}

func TestRequireIdentityRejects(t *testing.T) {
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	wrongIssuer := validClaims()
	wrongIssuer.Issuer = "someone-else"
	noSubject := validClaims()
	noSubject.Subject = ""

	cases := map[string]string{
		"missing":      "",
		"garbage":      "Bearer not-a-jwt",
		"wrong secret": "Bearer " + mint(t, "another-secret-another-secret-another", validClaims()),
		"expired":      "Bearer " + mint(t, testSecret, expired),
		"wrong issuer": "Bearer " + mint(t, testSecret, wrongIssuer),
		"no subject":   "Bearer " + mint(t, testSecret, noSubject),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			status, body := call(t, newAuthApp(), req)
			assert.Equal(t, http.StatusUnauthorized, status)

			var envelope map[string]string
			require.NoError(t, json.Unmarshal([]byte(body), &envelope))
			assert.Equal(t, "error", envelope["status"])
		})
	}
}

func TestJWTResolverRejectsOtherAlgorithms(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, validClaims()).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewJWTResolver(testSecret, "").Resolve(context.Background(), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRequestLoggerIncludesUserID(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	var entries []*logrus.Entry
	log.AddHook(hookFunc(func(e *logrus.Entry) { entries = append(entries, e) }))

	app := fiber.New()
	app.Use(RequestLogger(log))
	app.Use(RequireIdentity(NewJWTResolver(testSecret, "")))
	app.Get("/me", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+mint(t, testSecret, validClaims()))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	require.Len(t, entries, 1)
	assert.Equal(t, testUser, entries[0].Data["user_id"])
	assert.Equal(t, http.StatusNoContent, entries[0].Data["status_code"])
}

type hookFunc func(*logrus.Entry)

func (hookFunc) Levels() []logrus.Level { return logrus.AllLevels }
func (h hookFunc) Fire(e *logrus.Entry) error { h(e); return nil }
