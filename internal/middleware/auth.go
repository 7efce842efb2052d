package middleware

import (
	"net/http"
	"strings"

	"kiosco/internal/apierror"
	"kiosco/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

const (
	SesionKey = "sesion"
	// CookieName is the httpOnly cookie that carries the session token.
	CookieName = "session"
)

// SesionClaims are the claims embedded in every session token.
type SesionClaims struct {
	UserID uint   `json:"user_id"`
	User   string `json:"user"`
	Rol    string `json:"rol"`
	jwt.RegisteredClaims
}

// SesionAuth is the gate in front of every /dashboard route. The token is
// read from the session cookie first, then from a Bearer header.
func SesionAuth(secret string, store repository.SesionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := TokenFromRequest(c)
		if tokenStr == "" {
			abortSinSesion(c)
			return
		}

		claims := &SesionClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid || claims.User == "" {
			abortSinSesion(c)
			return
		}

		if claims.ID != "" {
			revocada, err := store.Revocada(c.Request.Context(), claims.ID)
			if err != nil {
				log.Error().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("session store lookup failed")
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, apierror.New("Servicio no disponible. Intente nuevamente."))
				return
			}
			if revocada {
				abortSinSesion(c)
				return
			}
		}

		c.Set(SesionKey, claims)
		c.Next()
	}
}

// TokenFromRequest returns the raw session token, or "" when the request
// carries none.
func TokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// GetSesion is a helper to retrieve typed claims from the Gin context.
func GetSesion(c *gin.Context) *SesionClaims {
	v, ok := c.Get(SesionKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*SesionClaims)
	return claims
}

func abortSinSesion(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Warning("Debes iniciar sesión para acceder."))
}
