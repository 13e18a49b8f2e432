package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"trailhead/auth"
	dbpkg "trailhead/db"
	"trailhead/mail"
	"trailhead/models"
	"trailhead/tools"

	"github.com/gin-gonic/gin"
)

// POST /api/v1/users/forgotPassword (public)
// Body: { "email": "..." }
//
// Gera um token de recuperação, guarda só o hash + expiração e manda o token
// em texto puro por e-mail. Se o envio falhar, limpa os campos persistidos
// antes de responder: nunca deixamos um token vivo que ninguém recebeu.
func ForgotPassword(c *gin.Context) {
	type Request struct {
		Email string `json:"email" form:"email"`
	}

	var req Request
	if err := c.Bind(&req); err != nil || req.Email == "" {
		RespondError(c, "email é obrigatório", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	// Revela se o e-mail existe (comportamento original). Para uma política
	// anti-enumeração, troque este branch por um RespondSuccess incondicional.
	var user models.User
	if err := db.Where("email = ?", models.NormalizeEmail(req.Email)).First(&user).Error; err != nil {
		RespondError(c, "there is no user with that email address", http.StatusNotFound)
		return
	}

	plaintext, hash, err := auth.NewResetToken()
	if err != nil {
		RespondError(c, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	expires := time.Now().Add(resetTokenTTL())

	// Um único UPDATE para o par hash+expiração: chamadas concorrentes não
	// conseguem intercalar escritas parciais da tupla.
	if err := db.Model(&user).Updates(map[string]interface{}{
		"password_reset_token":   hash,
		"password_reset_expires": &expires,
	}).Error; err != nil {
		RespondError(c, "erro ao salvar token", http.StatusInternalServerError)
		return
	}

	resetURL := fmt.Sprintf("%s://%s/api/v1/users/resetPassword/%s",
		requestScheme(c), c.Request.Host, plaintext)

	msg := mail.Message{
		To:      user.Email,
		Subject: "Your password reset token (valid for 10 min)",
		Body:    "Forgot your password? Submit a PATCH request with your new password to: " + resetURL,
	}

	if err := mailer.Send(msg); err != nil {
		log.Printf("forgot password: send failed user_id=%d err=%v", user.ID, err)
		// rollback: limpa hash e expiração juntos
		if cleanupErr := db.Model(&user).Updates(map[string]interface{}{
			"password_reset_token":   "",
			"password_reset_expires": nil,
		}).Error; cleanupErr != nil {
			// token fica vivo até expirar sozinho; só registra
			log.Printf("forgot password: cleanup failed user_id=%d err=%v", user.ID, cleanupErr)
		}
		RespondError(c, auth.ErrDeliveryFailed.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"status": "success", "message": "Token sent to email"})
}

// PATCH /api/v1/users/resetPassword/:token (public)
// Body: { "password": "...", "passwordConfirm": "..." }
//
// Token errado e token expirado respondem igual, para não virar oráculo.
func ResetPassword(c *gin.Context) {
	type Request struct {
		Password        string `json:"password" form:"password"`
		PasswordConfirm string `json:"passwordConfirm" form:"passwordConfirm"`
	}

	tokenParam := c.Param("token")
	if tokenParam == "" {
		RespondError(c, auth.ErrResetTokenInvalid.Error(), http.StatusBadRequest)
		return
	}

	var req Request
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if missing := tools.CheckPasswordLength(req.Password); missing != "" {
		RespondError(c, "Faltando campo "+missing, http.StatusBadRequest)
		return
	}
	if req.Password != req.PasswordConfirm {
		RespondError(c, "passwords do not match", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	// Hash do token apresentado + expiração no futuro, numa query só.
	hash := auth.HashResetToken(tokenParam)

	var user models.User
	err := db.
		Where("password_reset_token = ? AND password_reset_expires > ?", hash, time.Now()).
		First(&user).Error
	if err != nil {
		RespondError(c, auth.ErrResetTokenInvalid.Error(), http.StatusBadRequest)
		return
	}

	newHash, err := auth.HashPassword(req.Password)
	if err != nil {
		RespondError(c, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	// 1s de folga para um token de sessão emitido logo em seguida não ser
	// considerado anterior à troca de senha.
	changedAt := time.Now().Add(-time.Second)

	if err := db.Model(&user).Updates(map[string]interface{}{
		"password":               newHash,
		"password_reset_token":   "",
		"password_reset_expires": nil,
		"password_changed_at":    &changedAt,
	}).Error; err != nil {
		RespondError(c, "erro ao atualizar senha", http.StatusInternalServerError)
		return
	}

	token, err := issuer.Issue(strconv.FormatInt(user.ID, 10))
	if err != nil {
		RespondError(c, "erro ao assinar token", http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"status": "success", "token": token})
}

func requestScheme(c *gin.Context) string {
	if c.Request.TLS != nil {
		return "https"
	}
	return "http"
}
