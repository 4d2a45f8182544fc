package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	supa "github.com/supabase-community/supabase-go"

	"jobtracker/api-gateway/utils"
)

const (
	userIDKey         = "userId"
	accessTokenCookie = "sb-access-token"
)

// ErrInvalidToken is returned by resolvers for any token that does not identify a user.
var ErrInvalidToken = errors.New("invalid or expired token")

// IdentityResolver maps an access token to the caller's user id.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// JWTResolver verifies Supabase access tokens locally with the project's JWT secret.
type JWTResolver struct {
	secret []byte
	issuer string
}

func NewJWTResolver(secret, expectedIssuer string) *JWTResolver {
	return &JWTResolver{secret: []byte(secret), issuer: expectedIssuer}
}

func (r *JWTResolver) Resolve(_ context.Context, tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return r.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if r.issuer != "" && claims.Issuer != r.issuer {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// SupabaseResolver asks the Supabase auth server who owns the token.
type SupabaseResolver struct {
	client *supa.Client
}

func NewSupabaseResolver(client *supa.Client) *SupabaseResolver {
	return &SupabaseResolver{client: client}
}

func (r *SupabaseResolver) Resolve(ctx context.Context, token string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	user, err := r.client.Auth.WithToken(token).GetUser()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return user.ID.String(), nil
}

// RequireIdentity rejects requests without a resolvable access token. On success the
// caller's id is available through UserID.
func RequireIdentity(resolver IdentityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := accessToken(c)
		if token == "" {
			return utils.RespondWithError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		userID, err := resolver.Resolve(c.UserContext(), token)
		if err != nil || userID == "" {
			return utils.RespondWithError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// UserID returns the id set by RequireIdentity, or "" on unauthenticated routes.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}

// accessToken reads "Bearer <token>" (or a bare token) from Authorization, falling back
// to the Supabase session cookie.
func accessToken(c *fiber.Ctx) string {
	if header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); header != "" {
		scheme, rest, found := strings.Cut(header, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(rest)
		}
		return header
	}
	return strings.TrimSpace(c.Cookies(accessTokenCookie))
}
