package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer is stamped into every access token and required when parsing
const TokenIssuer = "datavault360"

var ErrInvalidToken = errors.New("invalid token")

type tokenSettings struct {
	accessSecret  []byte
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

var tokens tokenSettings

// InitJWT sets the signing secrets and token lifetimes; call once at startup
func InitJWT(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) {
	tokens = tokenSettings{
		accessSecret:  []byte(accessSecret),
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// Claims is the access token payload; Role decides what the dashboard shows
type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateAccessToken(userID uint, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokens.accessTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tokens.accessSecret)
}

// ValidateAccessToken accepts only unexpired HS256 tokens from this issuer that carry a role
func ValidateAccessToken(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return tokens.accessSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if claims.UserID == 0 || claims.Role == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GenerateRefreshToken returns an opaque token; only HashRefreshToken of it is stored
func GenerateRefreshToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// GenerateInvitationToken returns the single-use token embedded in setup links
func GenerateInvitationToken() string {
	return uuid.NewString()
}

// HashRefreshToken is SHA-256 over the refresh secret and the token
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(tokens.refreshSecret + ":" + token))
	return hex.EncodeToString(sum[:])
}

func GetRefreshTokenExpiry() time.Duration {
	return tokens.refreshTTL
}
