package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"guidanceku_backend/internals/configs"
	authModel "guidanceku_backend/internals/features/users/auth/model"
	userModel "guidanceku_backend/internals/features/users/user/model"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

// GenerateAccessToken signs the short-lived token carried on every request.
func GenerateAccessToken(user *userModel.UserModel) (string, time.Time, error) {
	exp := time.Now().Add(accessTTLDefault)
	claims := jwt.MapClaims{
		"sub":       user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role.String(),
		"exp":       exp.Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	return signed, exp, err
}

// GenerateRefreshToken signs + persists the refresh token for rotation.
func GenerateRefreshToken(db *gorm.DB, user *userModel.UserModel) (string, error) {
	exp := time.Now().Add(refreshTTLDefault)
	claims := jwt.MapClaims{
		"sub": user.ID.String(),
		"exp": exp.Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", err
	}

	row := authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     signed,
		ExpiresAt: exp,
	}
	if err := db.Create(&row).Error; err != nil {
		return "", err
	}
	return signed, nil
}

// ParseRefreshToken verifies signature + expiry of a refresh token.
func ParseRefreshToken(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}
