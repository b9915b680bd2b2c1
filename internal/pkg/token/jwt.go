package token

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const defaultTTL = 72 * time.Hour

// Generate signs an HS256 token carrying the user id and admin flag.
func Generate(userID uint, isAdmin bool, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"is_admin": isAdmin,
		"exp":      time.Now().Add(defaultTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Claims is the verified payload of a bearer token.
type Claims struct {
	UserID  uint
	IsAdmin bool
}

// Parse verifies a token string and extracts its claims.
func Parse(tokenString, secret string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid user id in token")
	}

	isAdmin, _ := claims["is_admin"].(bool)
	return &Claims{UserID: uint(userIDFloat), IsAdmin: isAdmin}, nil
}

// FromRequest reads the bearer token from the Authorization header.
func FromRequest(ctx *fiber.Ctx, secret string) (*Claims, error) {
	header := ctx.Get("Authorization")
	if header == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "missing authorization token")
	}
	if len(header) > 7 && header[:7] == "Bearer " {
		header = header[7:]
	}

	claims, err := Parse(header, secret)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}
