package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"nimtoz/config"

	"github.com/golang-jwt/jwt"
)

func accessSecret() []byte {
	return []byte(config.AppConfig.JWTAccessSecret)
}

func refreshSecret() []byte {
	return []byte(config.AppConfig.JWTRefreshSecret)
}

// GenerateAccessToken creates a signed short-lived JWT carrying the user's
// identity, email and role.
func GenerateAccessToken(userID, email, role string) (string, error) {
	ttl := time.Duration(config.AppConfig.AccessTokenTTLMin) * time.Minute
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(accessSecret())
}

// GenerateRefreshToken creates a signed long-lived JWT used only to mint new
// access tokens. Validity is additionally gated on the auth cache entry.
func GenerateRefreshToken(userID string) (string, error) {
	ttl := time.Duration(config.AppConfig.RefreshTokenTTLHr) * time.Hour
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(refreshSecret())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func parseWithSecret(tokenString string, secret []byte) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
}

// ValidateAccessToken parses and validates an access token string.
func ValidateAccessToken(tokenString string) (*jwt.Token, error) {
	return parseWithSecret(tokenString, accessSecret())
}

// ValidateRefreshToken parses and validates a refresh token string.
func ValidateRefreshToken(tokenString string) (*jwt.Token, error) {
	return parseWithSecret(tokenString, refreshSecret())
}

// TokenClaims extracts the subject, email and role claims from a valid access token.
func TokenClaims(tokenString string) (userID, email, role string, err error) {
	token, err := ValidateAccessToken(tokenString)
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", "", errors.New("invalid token")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", "", errors.New("token does not contain a valid 'sub' claim")
	}
	email, _ = claims["email"].(string)
	role, _ = claims["role"].(string)
	return sub, email, role, nil
}

// SubjectFromRefreshToken extracts the subject from a valid refresh token string.
func SubjectFromRefreshToken(tokenString string) (string, error) {
	token, err := ValidateRefreshToken(tokenString)
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}
	return sub, nil
}
