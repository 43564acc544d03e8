package jwt

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	DefaultIssuer = "merch-ledger"
	clockLeeway   = 5 * time.Second
)

type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}

type TokenIssuer interface {
	IssueToken(secret []byte, userID int, username string, timeLimit time.Duration) (string, error)
}

type TokenParser interface {
	ParseToken(secret []byte, tokenString string) (*Claims, error)
}

// Claims identify the ledger account a bearer token was issued for.
type Claims struct {
	UserID   int    `json:"uid"`
	Username string `json:"usr"`
	jwt.RegisteredClaims
}

type JWTTokenIssuer struct {
	issuer string
}

func NewJWTTokenIssuer() *JWTTokenIssuer {
	return &JWTTokenIssuer{issuer: DefaultIssuer}
}

func (ti *JWTTokenIssuer) IssueToken(secret []byte, userID int, username string, timeLimit time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    ti.issuer,
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(timeLimit)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

type JWTTokenParser struct {
	issuer string
}

func NewJWTTokenParser() *JWTTokenParser {
	return &JWTTokenParser{issuer: DefaultIssuer}
}

func (tp *JWTTokenParser) ParseToken(secret []byte, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tp.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(clockLeeway),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
