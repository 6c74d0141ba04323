package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims are the claims carried by an admin access token: the admin id
// as subject plus the email, signed and time-limited.
type AdminClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateAdminJWT signs a new HS256 token for the given admin.
func GenerateAdminJWT(adminID, email, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := AdminClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   adminID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateAdminJWT parses a token string and validates its signature
// and standard claims, returning the claims when valid.
func ParseAndValidateAdminJWT(tokenString string, secretKey string) (*AdminClaims, error) {
	claims := &AdminClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
