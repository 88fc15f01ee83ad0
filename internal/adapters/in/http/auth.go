package http

import (
	"fmt"
	"net/http"
	"strings"

	"orderservice/internal/core/ports"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const credentialsContextKey = "caller-credentials"

// BearerAuth validates the Authorization bearer token as an HMAC-signed JWT
// and stores the caller's credentials in the request context. The raw token
// is kept alongside the extracted email so it can be forwarded on
// authenticated calls to the user service.
func BearerAuth(secret []byte) echo.MiddlewareFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			rawToken, found := strings.CutPrefix(header, "Bearer ")
			if !found || rawToken == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			claims := jwt.MapClaims{}
			if _, err := parser.ParseWithClaims(rawToken, claims, func(*jwt.Token) (any, error) {
				return secret, nil
			}); err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid bearer token",
				})
			}

			email := emailFromClaims(claims)
			if email == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Token carries no caller identity",
				})
			}

			creds, err := ports.NewCredentials(email, rawToken)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid caller identity",
				})
			}

			c.Set(credentialsContextKey, creds)
			return next(c)
		}
	}
}

// emailFromClaims picks the caller's email out of the token. The user
// service issues tokens with the email as the subject; an explicit email
// claim takes precedence when present.
func emailFromClaims(claims jwt.MapClaims) string {
	if email, ok := claims["email"].(string); ok && email != "" {
		return email
	}
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}

func credentialsFromContext(c echo.Context) (ports.Credentials, error) {
	creds, ok := c.Get(credentialsContextKey).(ports.Credentials)
	if !ok {
		return ports.Credentials{}, fmt.Errorf("no caller credentials in request context")
	}
	return creds, nil
}
