package domain

import "github.com/golang-jwt/jwt/v5"

const AdminRole = "admin"

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// Claims do token do painel administrativo. Há um único papel: admin.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
