package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/contextutil"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/response"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/token"

	"github.com/gin-gonic/gin"
)

// Principal is the minimal view of an authenticated actor the gates need.
type Principal struct {
	ID         string
	Active     bool
	Superadmin bool
}

// PrincipalLoader fetches a principal by id. A function type keeps this
// package free of feature-package imports; app wiring passes closures
// over the user/employee repositories.
type PrincipalLoader func(ctx context.Context, id string) (*Principal, error)

// Context keys set by the auth gates.
const (
	ContextUserID       = "user_id"
	ContextEmployeeID   = "employee_id"
	ContextIsSuperadmin = "is_superadmin"
)

// RequireUser gates a route on a valid user access token:
// missing/invalid token or unknown principal → 401, inactive → 403.
func RequireUser(tokens token.Service, load PrincipalLoader) gin.HandlerFunc {
	return requirePrincipal(tokens, load, token.TypeUser, ContextUserID)
}

// RequireEmployee is the same state machine keyed on employee records and
// the employee token type.
func RequireEmployee(tokens token.Service, load PrincipalLoader) gin.HandlerFunc {
	return requirePrincipal(tokens, load, token.TypeEmployee, ContextEmployeeID)
}

func requirePrincipal(tokens token.Service, load PrincipalLoader, wantType, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authentication token not found", nil)
			c.Abort()
			return
		}

		claims, ok := tokens.Verify(tokenString)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		// A valid token presented to the wrong principal's routes is
		// still a 401, not a 403: the caller is not authenticated here.
		if claims.Type != wantType {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		principal, err := load(c.Request.Context(), claims.SubjectID)
		if err != nil || principal == nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		if !principal.Active {
			response.Error(c, http.StatusForbidden, "Account is inactive", nil)
			c.Abort()
			return
		}

		c.Set(contextKey, principal.ID)
		if contextKey == ContextEmployeeID {
			c.Set(ContextIsSuperadmin, principal.Superadmin)
		}

		ctx := contextutil.WithActorID(c.Request.Context(), principal.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		tokenString = ""
	}

	if tokenString == "" {
		if cookie, err := c.Cookie("access_token"); err == nil {
			tokenString = cookie
		}
	}

	return tokenString
}
