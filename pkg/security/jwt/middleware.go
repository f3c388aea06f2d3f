package jwt

import (
	"context"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jobmatch/backend/pkg/auth"
)

// Locals keys set by the middleware on success.
const (
	LocalsIdentity = "identity"
	LocalsUserID   = "userId"
)

// Resolver resolves a token subject to a full identity (one user read).
type Resolver interface {
	Resolve(ctx context.Context, userID uuid.UUID) (auth.Identity, error)
}

// MiddlewareConfig controls the authentication gate.
type MiddlewareConfig struct {
	Secret string
	Issuer string
	// RefetchUser makes the gate resolve the subject against the user store
	// on every request: revocation takes effect immediately at the cost of
	// one read. When false the identity is trusted from the claims and a
	// deleted user's token keeps working until it expires.
	RefetchUser bool
	Resolver    Resolver
}

// Error mapping is deliberately uniform: a configuration problem is a 500,
// every credential-validity problem is the same generic 401. Expired and
// malformed tokens are indistinguishable to the caller.
func NewAuthMiddleware(cfg MiddlewareConfig) fiber.Handler {
	secretBytes := []byte(cfg.Secret)
	return func(c *fiber.Ctx) error {
		if len(secretBytes) == 0 {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Server configuration error"})
		}
		tokenStr := extractToken(c.Get("Authorization"))
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "No token provided"})
		}
		token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return secretBytes, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
		if err != nil || !token.Valid {
			return unauthorized(c)
		}
		claims, ok := token.Claims.(*Claims)
		if !ok {
			return unauthorized(c)
		}
		if cfg.Issuer != "" && claims.RegisteredClaims.Issuer != cfg.Issuer {
			return unauthorized(c)
		}
		subject, err := uuid.Parse(claims.RegisteredClaims.Subject)
		if err != nil {
			return unauthorized(c)
		}

		var ident auth.Identity
		if cfg.RefetchUser && cfg.Resolver != nil {
			ident, err = cfg.Resolver.Resolve(c.Context(), subject)
			if err != nil {
				// Unresolvable subject fails as an invalid token, not as
				// "user not found".
				return unauthorized(c)
			}
		} else {
			ident = auth.Identity{
				UserID:    subject,
				Name:      claims.Name,
				Email:     claims.Email,
				AvatarURL: claims.AvatarURL,
			}
		}

		c.Locals(LocalsIdentity, ident)
		c.Locals(LocalsUserID, subject.String())
		return c.Next()
	}
}

// Support both "Bearer <token>" and "<token>" (no prefix).
func extractToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if strings.Contains(header, " ") {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return header
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
}
