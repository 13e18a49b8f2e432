package controllers

import (
	"net/http"

	dbpkg "trailhead/db"
	"trailhead/models"

	"github.com/gin-gonic/gin"
)

// GET /api/v1/tours
func GetTours(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var tours []models.Tour
	if err := db.Order("id asc").Find(&tours).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"status": "success", "results": len(tours), "data": gin.H{"tours": tours}})
}

// GET /api/v1/tours/:id
func GetTourByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var tour models.Tour
	if err := db.First(&tour, id).Error; err != nil {
		RespondError(c, "tour não encontrado", http.StatusNotFound)
		return
	}

	RespondSuccess(c, gin.H{"status": "success", "data": gin.H{"tour": tour}})
}

// POST /api/v1/tours (admin, lead)
func CreateTour(c *gin.Context) {
	var tour models.Tour
	if err := c.Bind(&tour); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if missing := tour.MissingFields(); missing != "" {
		RespondError(c, "Faltando campo "+missing, http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	if err := db.Create(&tour).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": gin.H{"tour": tour}})
}

type TourUpdateRequest struct {
	Name   *string  `json:"name" form:"name"`
	Rating *float64 `json:"rating" form:"rating"`
	Price  *float64 `json:"price" form:"price"`
}

// PATCH /api/v1/tours/:id (admin, lead)
// Atualização parcial: campos ausentes no body ficam como estão.
func UpdateTour(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var body TourUpdateRequest
	if err := c.Bind(&body); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var tour models.Tour
	if err := db.First(&tour, id).Error; err != nil {
		RespondError(c, "tour não encontrado", http.StatusNotFound)
		return
	}

	if body.Name != nil && *body.Name != "" {
		tour.Name = *body.Name
	}
	if body.Rating != nil {
		tour.Rating = *body.Rating
	}
	if body.Price != nil {
		tour.Price = *body.Price
	}

	if err := db.Save(&tour).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"status": "success", "data": gin.H{"tour": tour}})
}

// DELETE /api/v1/tours/:id (admin, lead)
func DeleteTour(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var tour models.Tour
	if err := db.First(&tour, id).Error; err != nil {
		RespondError(c, "tour não encontrado", http.StatusNotFound)
		return
	}

	if err := db.Delete(&tour).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	c.Status(http.StatusNoContent)
}
