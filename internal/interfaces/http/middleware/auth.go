package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kyc-chain.backend/pkg/crypto"
	"kyc-chain.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// APIKeyHeader carries a service API key for admin tooling
	APIKeyHeader = "X-Api-Key"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// ActorAddressKey is the context key for the caller's address
	ActorAddressKey = "actorAddress"
	// ActorRoleKey is the context key for the caller's role hint
	ActorRoleKey = "actorRole"
)

// ServiceKey pairs a bcrypt-hashed API key with the admin address it acts
// as. Used by headless tooling that has no wallet session.
type ServiceKey struct {
	KeyHash string
	Address string
}

// AuthMiddleware authenticates a request from either a wallet-session JWT
// or a service API key. It only establishes who the caller is; every
// capability decision stays inside the engine.
func AuthMiddleware(jwtService *jwt.JWTService, serviceKey *ServiceKey) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey := c.GetHeader(APIKeyHeader); apiKey != "" && serviceKey != nil && serviceKey.KeyHash != "" {
			if !crypto.CheckAPIKey(apiKey, serviceKey.KeyHash) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Invalid API key",
				})
				return
			}
			c.Set(ActorAddressKey, serviceKey.Address)
			c.Set(ActorRoleKey, "ADMIN")
			c.Next()
			return
		}

		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header is required",
			})
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization format. Use: Bearer <token>",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			if err == jwt.ErrExpiredToken {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token has expired",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
			})
			return
		}

		c.Set(ActorAddressKey, claims.Address)
		c.Set(ActorRoleKey, claims.Role)

		c.Next()
	}
}

// GetActorAddress gets the authenticated caller address from context
func GetActorAddress(c *gin.Context) (string, bool) {
	address, exists := c.Get(ActorAddressKey)
	if !exists {
		return "", false
	}
	return address.(string), true
}

// GetActorRole gets the caller's role hint from context
func GetActorRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(ActorRoleKey)
	if !exists {
		return "", false
	}
	return role.(string), true
}
