package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParamID lê um parâmetro de rota numérico (> 0). Em caso de erro já
// responde 400 e retorna ok=false.
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, "parâmetro "+name+" inválido", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
