package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"trailhead/auth"
	dbpkg "trailhead/db"
	"trailhead/models"

	"github.com/gin-gonic/gin"
)

const ctxUserKey = "auth_user"

// AuthRequired validates the Bearer token and loads the user from DB into
// context. Steps, in order: extract header, verify signature+expiry, load
// the user, reject tokens issued before the last password change.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(strings.ToLower(h), "bearer ") {
			RespondError(c, "no token provided", http.StatusUnauthorized)
			c.Abort()
			return
		}
		token := strings.TrimSpace(h[len("Bearer "):])

		userID, issuedAt, err := issuer.Verify(token)
		if err != nil {
			msg := auth.ErrTokenInvalid.Error()
			if errors.Is(err, auth.ErrTokenExpired) {
				msg = auth.ErrTokenExpired.Error()
			}
			RespondError(c, msg, http.StatusUnauthorized)
			c.Abort()
			return
		}

		db := dbpkg.DBInstance(c)
		if db == nil {
			RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
			c.Abort()
			return
		}

		id, err := strconv.ParseInt(userID, 10, 64)
		if err != nil {
			RespondError(c, auth.ErrTokenInvalid.Error(), http.StatusUnauthorized)
			c.Abort()
			return
		}

		// Conta pode ter sido apagada depois da emissão do token.
		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			RespondError(c, "the user no longer exists", http.StatusUnauthorized)
			c.Abort()
			return
		}

		// Troca de senha invalida todos os tokens anteriores, sem lista de
		// revogação: basta comparar timestamps.
		if user.ChangedPasswordAfter(issuedAt) {
			RespondError(c, auth.ErrTokenStale.Error(), http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(ctxUserKey, user)
		c.Next()
	}
}

// RestrictTo blocks users whose role is not in the allow-list. Must run
// after AuthRequired.
func RestrictTo(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUserLogged(c)
		if !ok {
			RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}
		if !roleAllowed(user.Role, roles) {
			RespondError(c, "you do not have permission to perform this action", http.StatusForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// roleAllowed é o predicado puro por trás do RestrictTo.
func roleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// GetUserLogged returns the user loaded by AuthRequired.
func GetUserLogged(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
