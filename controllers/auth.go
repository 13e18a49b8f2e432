package controllers

import (
	"net/http"
	"strconv"

	"trailhead/auth"
	dbpkg "trailhead/db"
	"trailhead/models"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	PasswordConfirm string `json:"passwordConfirm" form:"passwordConfirm"`
	Role            string `json:"role" form:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// POST /api/v1/users/signup
func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	user := models.User{
		Name:  req.Name,
		Email: models.NormalizeEmail(req.Email),
		Role:  models.ROLE_USER,
	}
	if models.ValidRole(req.Role) {
		user.Role = req.Role
	}

	if missing := user.MissingFields(req.Password); missing != "" {
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

	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		RespondError(c, "Usuário já existe", http.StatusBadRequest)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		RespondError(c, "erro ao processar senha", http.StatusInternalServerError)
		return
	}
	user.Password = hash

	if err := db.Create(&user).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := issuer.Issue(strconv.FormatInt(user.ID, 10))
	if err != nil {
		RespondError(c, "erro ao assinar token", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"token":  token,
		"data":   gin.H{"user": user},
	})
}

// POST /api/v1/users/login
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		RespondError(c, "email e password são obrigatórios", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	// Mesma mensagem para email desconhecido e senha errada.
	var user models.User
	if err := db.Where("email = ?", models.NormalizeEmail(req.Email)).First(&user).Error; err != nil {
		RespondError(c, auth.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
		return
	}
	if !auth.CheckPassword(req.Password, user.Password) {
		RespondError(c, auth.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
		return
	}

	token, err := issuer.Issue(strconv.FormatInt(user.ID, 10))
	if err != nil {
		RespondError(c, "erro ao assinar token", http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"status": "success", "token": token})
}
