package auth

import "errors"

var (

	// token verification errors
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenStale   = errors.New("token issued before last password change")

	// credential errors
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// reset flow errors
	ErrResetTokenInvalid = errors.New("reset token is invalid or has expired")
	ErrDeliveryFailed    = errors.New("error sending email")
)
