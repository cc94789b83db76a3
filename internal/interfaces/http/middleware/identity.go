package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"soapbox/internal/domain/identity"
	"soapbox/internal/shared/config"
	"soapbox/internal/shared/logger"
	"soapbox/internal/shared/utils"
)

const actorContextKey = "actor"

// identityClaims are the verified claims the host application signs into its
// identity tokens. The board engine trusts them as-is.
type identityClaims struct {
	UserID    uint     `json:"uid"`
	ActorType string   `json:"actor_type,omitempty"`
	Email     string   `json:"email,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// IdentityMiddleware extracts the acting user from a host-signed JWT. Most
// routes serve anonymous visitors too, so the default behavior is to resolve
// an identity when one is presented and fall back to the anonymous actor.
type IdentityMiddleware struct {
	secret []byte
	header string
	logger logger.Interface
}

func NewIdentityMiddleware(cfg *config.IdentityConfig, log logger.Interface) *IdentityMiddleware {
	header := cfg.Header
	if header == "" {
		header = "Authorization"
	}
	return &IdentityMiddleware{
		secret: []byte(cfg.JWTSecret),
		header: header,
		logger: log,
	}
}

// Resolve attaches the actor to the request context. A missing token yields
// the anonymous actor; a token that is present but invalid is rejected, since
// silently downgrading a bad credential would mask integration bugs.
func (m *IdentityMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			c.Set(actorContextKey, identity.Actor{})
			c.Next()
			return
		}

		actor, err := m.verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify identity token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// RequireIdentity rejects anonymous requests. Routes using it must be
// registered after Resolve.
func (m *IdentityMiddleware) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ActorFromContext(c).IsAnonymous() {
			utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m *IdentityMiddleware) extractToken(c *gin.Context) string {
	raw := c.GetHeader(m.header)
	if raw == "" {
		return ""
	}

	// The Authorization header carries a Bearer prefix; custom headers hold
	// the bare token.
	if strings.EqualFold(m.header, "Authorization") {
		parts := strings.SplitN(raw, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return ""
		}
		return parts[1]
	}
	return raw
}

func (m *IdentityMiddleware) verify(token string) (identity.Actor, error) {
	var claims identityClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return identity.Actor{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if !parsed.Valid {
		return identity.Actor{}, fmt.Errorf("token is not valid")
	}
	if claims.UserID == 0 {
		return identity.Actor{}, fmt.Errorf("token carries no user ID")
	}

	actor := identity.NewActor(claims.UserID, claims.ActorType, claims.Roles)
	actor.Email = claims.Email
	return actor, nil
}

// ActorFromContext returns the actor resolved for this request, or the
// anonymous actor when identity middleware did not run.
func ActorFromContext(c *gin.Context) identity.Actor {
	if v, exists := c.Get(actorContextKey); exists {
		if actor, ok := v.(identity.Actor); ok {
			return actor
		}
	}
	return identity.Actor{}
}
