package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Masa berlaku token mengikuti perilaku backend lama: 3 jam, tanpa refresh.
const TokenLifetime = 3 * time.Hour

// Claims berisi identitas user untuk token HS256.
// Subject (id user) hanya diisi pada jalur login userauth.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWTToken membuat token dengan subject = id user.
func GenerateJWTToken(idUser int, username, role string) (string, error) {
	return generateToken(strconv.Itoa(idUser), username, role)
}

// GenerateLegacyJWTToken membuat token tanpa subject untuk jalur login lama.
func GenerateLegacyJWTToken(username, role string) (string, error) {
	return generateToken("", username, role)
}

func generateToken(subject, username, role string) (string, error) {
	jwtKey := []byte(os.Getenv("JWT_SECRET_KEY"))
	if len(jwtKey) == 0 {
		return "", fmt.Errorf("JWT secret key is missing")
	}

	now := time.Now()
	claims := Claims{
		Username: username,
		Role:     strings.ToLower(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    os.Getenv("JWT_ISSUER"),
			Audience:  jwt.ClaimStrings{os.Getenv("JWT_AUDIENCE")},
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ValidateJWTToken memvalidasi token dan mengembalikan klaimnya.
func ValidateJWTToken(tokenString string) (*Claims, error) {
	jwtKey := []byte(os.Getenv("JWT_SECRET_KEY"))
	if len(jwtKey) == 0 {
		return nil, fmt.Errorf("JWT secret key is missing")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if !claims.VerifyIssuer(os.Getenv("JWT_ISSUER"), true) {
		return nil, fmt.Errorf("invalid token issuer")
	}
	if !claims.VerifyAudience(os.Getenv("JWT_AUDIENCE"), true) {
		return nil, fmt.Errorf("invalid token audience")
	}
	return claims, nil
}
