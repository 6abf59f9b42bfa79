package service

import (
	"errors"
	"time"

	"github.com/MaTrix986/inspiration-collector/config"

	"github.com/golang-jwt/jwt/v4"
)

type Claims struct {
	UserID string `json:"user_id"`
	jwt.StandardClaims
}

// 密钥放 .env（JWT_SECRET），不能在包初始化时读，那时候 .env 还没加载
func jwtKey() []byte {
	return []byte(config.Get("JWT_SECRET", "inspiration_secret_key"))
}

// GenerateToken 生成 JWT Token，7 天有效
func GenerateToken(userID string) (string, error) {
	expireTime := time.Now().Add(7 * 24 * time.Hour)
	claims := &Claims{
		UserID: NormalizeID(userID),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expireTime.Unix(),
			Issuer:    "inspiration-server",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

// ParseToken 校验并取出 Token 里的用户标识
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("token 无效")
	}
	return claims, nil
}
