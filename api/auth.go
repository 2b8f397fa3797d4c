package api

import (
	"fmt"
	"strings"
	"time"

	"portfoliobook/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

func parseAdminJwt(jwtStr string, decodeToken string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(decodeToken), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse jwt: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("failed to parse jwt claims")
	}

	if exp, ok := claims["exp"].(float64); ok {
		if time.Now().UTC().Unix() > int64(exp) {
			return nil, fmt.Errorf("jwt is expired")
		}
	}

	return claims, nil
}

// adminAuthMiddleware gates the consultation admin endpoints behind a
// bearer token signed with the shared admin secret.
func (m ApiHandler) adminAuthMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		returnErrorJsonCode(apperr.New(apperr.CodeUnauthorized, "Unauthorized"), c, 401)
		return
	}

	if _, err := parseAdminJwt(strings.TrimPrefix(header, "Bearer "), m.JwtDecodeToken); err != nil {
		returnErrorJsonCode(apperr.Wrap(apperr.CodeUnauthorized, "Unauthorized", err), c, 401)
		return
	}

	c.Next()
}
