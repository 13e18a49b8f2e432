package controllers

import (
	"time"

	"trailhead/auth"
	"trailhead/config"
	"trailhead/mail"
)

// Dependências compartilhadas pelos handlers, definidas uma vez no boot
// (mesmo padrão do db.SetConfigurations). Depois do Setup são somente-leitura.
var (
	conf   config.Configuration
	issuer *auth.Issuer
	mailer mail.Mailer
)

func Setup(cfg config.Configuration, m mail.Mailer) {
	conf = cfg
	issuer = auth.NewIssuer(
		[]byte(cfg.Security.JwtSecret),
		time.Duration(cfg.Security.JwtExpiresHours)*time.Hour,
	)
	mailer = m
}

func resetTokenTTL() time.Duration {
	return time.Duration(conf.Security.ResetTokenTTLMin) * time.Minute
}
