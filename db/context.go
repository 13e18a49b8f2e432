package db

import (
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

const dbKey = "database"

// SetDBtoContext injeta a conexão no contexto de cada requisição; os
// handlers recuperam com DBInstance.
func SetDBtoContext(database *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dbKey, database)
		c.Next()
	}
}

// DBInstance devolve a conexão injetada, ou nil se o middleware não rodou.
func DBInstance(c *gin.Context) *gorm.DB {
	if v, ok := c.Get(dbKey); ok {
		if database, ok := v.(*gorm.DB); ok {
			return database
		}
	}
	return nil
}
