package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"trailhead/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForgotPassword_UnknownEmail(t *testing.T) {
	r, _ := setupTest(t, &capturingMailer{})

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/users/forgotPassword", "", gin.H{
		"email": "nobody@x.com",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestForgotPassword_DeliveryFailureRollsBack(t *testing.T) {
	mailer := &capturingMailer{fail: true}
	r, database := setupTest(t, mailer)

	signup(t, r, "Maria Silva", "a@x.com", "longenough1", "")

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/users/forgotPassword", "", gin.H{
		"email": "a@x.com",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// never leave a live token nobody received
	var user models.User
	require.NoError(t, database.Where("email = ?", "a@x.com").First(&user).Error)
	assert.Empty(t, user.PasswordResetToken)
	assert.Nil(t, user.PasswordResetExpires)
}

// Full recovery scenario: request, consume once, old sessions go stale,
// second consumption fails.
func TestPasswordResetFlow(t *testing.T) {
	mailer := &capturingMailer{}
	r, database := setupTest(t, mailer)

	oldSession := signup(t, r, "Maria Silva", "a@x.com", "longenough1", "")

	// iat tem precisão de segundo e a troca de senha é registrada com 1s de
	// folga; garante que o token antigo fica claramente antes da troca
	time.Sleep(2100 * time.Millisecond)

	// request reset
	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/users/forgotPassword", "", gin.H{
		"email": "a@x.com",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// hash + expiry persisted together, ~10 min out; plaintext only in the mail
	var user models.User
	require.NoError(t, database.Where("email = ?", "a@x.com").First(&user).Error)
	require.NotEmpty(t, user.PasswordResetToken)
	require.NotNil(t, user.PasswordResetExpires)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), *user.PasswordResetExpires, 30*time.Second)

	plaintext := mailer.lastResetToken(t)
	assert.NotEqual(t, plaintext, user.PasswordResetToken)

	// wrong token
	w, _ = doJSON(t, r, http.MethodPatch, "/api/v1/users/resetPassword/definitely-wrong", "", gin.H{
		"password": "newpass123", "passwordConfirm": "newpass123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// weak new password rejected before consuming the token
	w, _ = doJSON(t, r, http.MethodPatch, "/api/v1/users/resetPassword/"+plaintext, "", gin.H{
		"password": "short", "passwordConfirm": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// correct token before expiry: succeeds and logs the user in
	w, resp := doJSON(t, r, http.MethodPatch, "/api/v1/users/resetPassword/"+plaintext, "", gin.H{
		"password": "newpass123", "passwordConfirm": "newpass123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	newSession, _ := resp["token"].(string)
	require.NotEmpty(t, newSession)

	// reset state cleared, change recorded
	require.NoError(t, database.Where("email = ?", "a@x.com").First(&user).Error)
	assert.Empty(t, user.PasswordResetToken)
	assert.Nil(t, user.PasswordResetExpires)
	require.NotNil(t, user.PasswordChangedAt)

	// single use: replaying the same token fails the same way as a wrong one
	w, _ = doJSON(t, r, http.MethodPatch, "/api/v1/users/resetPassword/"+plaintext, "", gin.H{
		"password": "another123", "passwordConfirm": "another123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// old password no longer works, new one does
	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/users/login", "", gin.H{
		"email": "a@x.com", "password": "longenough1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/users/login", "", gin.H{
		"email": "a@x.com", "password": "newpass123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// the pre-reset session token is stale even though its signature is valid
	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/users/me", oldSession, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// the session issued by the reset works
	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/users/me", newSession, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResetPassword_ExpiredTokenIndistinguishable(t *testing.T) {
	mailer := &capturingMailer{}
	r, database := setupTest(t, mailer)

	signup(t, r, "Maria Silva", "a@x.com", "longenough1", "")

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/users/forgotPassword", "", gin.H{
		"email": "a@x.com",
	})
	require.Equal(t, http.StatusOK, w.Code)
	plaintext := mailer.lastResetToken(t)

	// push the expiry into the past
	past := time.Now().Add(-time.Minute)
	require.NoError(t, database.Model(&models.User{}).
		Where("email = ?", "a@x.com").
		Update("password_reset_expires", &past).Error)

	wExpired, respExpired := doJSON(t, r, http.MethodPatch, "/api/v1/users/resetPassword/"+plaintext, "", gin.H{
		"password": "newpass123", "passwordConfirm": "newpass123",
	})
	wWrong, respWrong := doJSON(t, r, http.MethodPatch, "/api/v1/users/resetPassword/definitely-wrong", "", gin.H{
		"password": "newpass123", "passwordConfirm": "newpass123",
	})

	assert.Equal(t, http.StatusBadRequest, wExpired.Code)
	assert.Equal(t, wWrong.Code, wExpired.Code)
	assert.Equal(t, respWrong["error"], respExpired["error"])
}
