package main

import (
	"log"
	"os"

	"trailhead/config"
	"trailhead/controllers"
	"trailhead/db"
	"trailhead/mail"
	"trailhead/router"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.json"
	}
	cfg := config.Get(configPath)

	db.SetConfigurations(cfg)
	database, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	var mailer mail.Mailer = mail.NewSMTPMailer(cfg)
	if cfg.Mail.Host == "" {
		log.Println("mail: SMTP não configurado, usando LogMailer")
		mailer = mail.LogMailer{}
	}

	controllers.Setup(cfg, mailer)

	r := gin.New()
	r.Use(db.SetDBtoContext(database))
	router.Initialize(r, cfg)

	log.Printf("Trailhead listening on :%s", cfg.ApiPort)
	log.Fatal(r.Run(":" + cfg.ApiPort))
}
