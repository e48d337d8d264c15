package middleware

import (
	"fmt"

	"github.com/andriekus/product-options-service/pkg/errs"
	"github.com/andriekus/product-options-service/pkg/response"
	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

// AuthHeader carries the pre-issued access token on every request.
const AuthHeader = "k"

// VerifyToken gates every route, matched or not, on a valid HS256 token
// signed with the shared secret. No claims are inspected beyond validity.
func VerifyToken(jwtSecretKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get(AuthHeader)
			if key == "" {
				return response.WriteErrorResponse(c, errs.ErrUnauthorized)
			}

			token, err := jwt.Parse(key, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(jwtSecretKey), nil
			})
			if err != nil || !token.Valid {
				return response.WriteErrorResponse(c, errs.ErrUnauthorized)
			}

			return next(c)
		}
	}
}
