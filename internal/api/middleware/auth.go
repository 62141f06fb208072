package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
)

// ViewerContextKey is where Auth stores the domain.Viewer built from the
// token claims.
const ViewerContextKey = "viewer"

// Auth validates the JWT and injects the viewer capability object into the
// request context. Role flags are resolved here, once per request.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			viewer := viewerFromClaims(claims)
			if viewer.ID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
			}
			c.Set(ViewerContextKey, viewer)

			return next(c)
		}
	}
}

func viewerFromClaims(claims jwt.MapClaims) domain.Viewer {
	v := domain.Viewer{}
	if id, ok := claims["user_id"].(string); ok {
		v.ID = id
	}
	// JSON numbers decode as float64.
	if no, ok := claims["user_no"].(float64); ok {
		v.UserNo = int(no)
	}
	if name, ok := claims["username"].(string); ok {
		v.Username = name
	}
	if b, ok := claims["is_manager"].(bool); ok {
		v.IsManager = b
	}
	if b, ok := claims["is_viewer"].(bool); ok {
		v.IsViewer = b
	}
	if b, ok := claims["is_superuser"].(bool); ok {
		v.IsSuperuser = b
	}
	return v
}
