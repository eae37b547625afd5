// file: internals/helpers/auth/token.go
package helper

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"lesprivat_backend/internals/configs"
)

const TokenTTL = 24 * time.Hour

// Claims yang dibawa setiap access token. partition_id menentukan scope data
// seluruh request; tidak pernah diambil dari body.
type TokenClaims struct {
	UserID      int64  `json:"user_id"`
	PartitionID int64  `json:"partition_id"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

func CreateToken(userID, partitionID int64, role string) (string, time.Time, error) {
	expiresAt := time.Now().Add(TokenTTL)
	claims := TokenClaims{
		UserID:      userID,
		PartitionID: partitionID,
		Role:        role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func ParseToken(raw string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}
