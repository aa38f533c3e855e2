package v1

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spendbase/backend/internal/auth"
	"github.com/spendbase/backend/internal/models"
)

// contextUser is the gin context key the authenticated user is stored under.
const contextUser = "spendbase-user"

// Authenticate resolves the session once per request at the boundary.
//
// It verifies the bearer token, loads the user and stores it in the context.
// Handlers never re-derive the session, they read the resolved user with
// currentUser.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		var tokenString string
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenString = parts[1]
		}

		if tokenString == "" {
			c.AbortWithStatusJSON(status(errNoSession), httpError{Error: errNoSession.Error()})
			return
		}

		claims, err := auth.ParseToken(auth.Secret(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(status(err), httpError{Error: err.Error()})
			return
		}

		var user models.User
		err = models.DB.First(&user, claims.UserID).Error
		if err != nil {
			c.AbortWithStatusJSON(status(errNoSession), httpError{Error: errNoSession.Error()})
			return
		}

		c.Set(contextUser, user)
		c.Next()
	}
}

// currentUser returns the user resolved by Authenticate.
func currentUser(c *gin.Context) models.User {
	return c.MustGet(contextUser).(models.User)
}
