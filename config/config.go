package config

import (
	"encoding/json"
	"log"
	"os"
)

type Configuration struct {
	ApiPort string `json:"api_port"`
	LogPath string `json:"log_path"`

	Database string `json:"database"` // "sqlite3" ou "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	Security struct {
		JwtSecret        string `json:"jwt_secret"`
		JwtExpiresHours  int    `json:"jwt_expires_hours"`
		ResetTokenTTLMin int    `json:"reset_token_ttl_minutes"`
	} `json:"security"`

	Mail struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"mail"`
}

func Get(path string) Configuration {
	var c Configuration

	if b, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(b, &c); err != nil {
			log.Fatal(err)
		}
	} else if path != "" {
		log.Printf("config: %v (using defaults + env)", err)
	}

	// defaults (pra evitar nil/zero chato)
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.Security.JwtExpiresHours <= 0 {
		c.Security.JwtExpiresHours = 24
	}
	if c.Security.ResetTokenTTLMin <= 0 {
		c.Security.ResetTokenTTLMin = 10
	}
	if c.Security.JwtSecret == "" {
		c.Security.JwtSecret = os.Getenv("JWT_SECRET")
	}
	if c.Security.JwtSecret == "" {
		c.Security.JwtSecret = "CHANGE_ME"
	}
	if c.Mail.From == "" {
		c.Mail.From = "Trailhead <hello@trailhead.dev>"
	}

	return c
}
