// utils/auth.go
package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mafalia/teranga-network/middleware"
)

// TokenLifetime is how long an issued partner token stays valid.
const TokenLifetime = 24 * time.Hour

// GenerateToken issues a signed JWT for the partner.
func GenerateToken(partnerID primitive.ObjectID, email string) (string, error) {
	claims := &middleware.JwtCustomClaims{
		PartnerID: partnerID.Hex(),
		Email:     email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(TokenLifetime).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(middleware.GetJWTSecret()))
}

// GetPartnerIDFromToken extracts the partner id from the JWT token
func GetPartnerIDFromToken(c echo.Context) (primitive.ObjectID, error) {
	userToken := c.Get("user")
	if userToken == nil {
		return primitive.NilObjectID, errors.New("no token found")
	}

	token, ok := userToken.(*jwt.Token)
	if !ok {
		return primitive.NilObjectID, errors.New("invalid token type")
	}

	claims, ok := token.Claims.(*middleware.JwtCustomClaims)
	if !ok {
		return primitive.NilObjectID, errors.New("invalid claims type")
	}

	return primitive.ObjectIDFromHex(claims.PartnerID)
}
