package application

import (
	"context"
	"time"

	"github.com/Lexv0lk/merch-ledger/internal/auth/domain"
	"github.com/Lexv0lk/merch-ledger/internal/pkg/jwt"
)

const DefaultTokenTimeLimit = time.Hour

type Authenticator struct {
	usersRepository domain.UsersRepository
	passwordHasher  domain.PasswordHasher
	tokenIssuer     jwt.TokenIssuer
	secretKey       []byte
	tokenTimeLimit  time.Duration
}

func NewAuthenticator(
	usersRepository domain.UsersRepository,
	passwordHasher domain.PasswordHasher,
	tokenIssuer jwt.TokenIssuer,
	secretKey string,
	tokenTimeLimit time.Duration,
) *Authenticator {
	return &Authenticator{
		usersRepository: usersRepository,
		passwordHasher:  passwordHasher,
		tokenIssuer:     tokenIssuer,
		secretKey:       []byte(secretKey),
		tokenTimeLimit:  tokenTimeLimit,
	}
}

// Authenticate logs an existing user in or registers a new one on first use.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (string, error) {
	credentials := domain.Credentials{Username: username, Password: password}
	if err := credentials.Validate(); err != nil {
		return "", err
	}

	userInfo, found, err := a.usersRepository.TryGetUserInfo(ctx, username)
	if err != nil {
		return "", err
	}

	if !found {
		hashedPassword, err := a.passwordHasher.HashPassword(password)
		if err != nil {
			return "", err
		}

		userInfo, err = a.usersRepository.CreateUserIfAbsent(ctx, username, hashedPassword)
		if err != nil {
			return "", err
		}

		// a concurrent first login may have registered the name with another password
		if userInfo.PasswordHash == hashedPassword {
			return a.tokenIssuer.IssueToken(a.secretKey, userInfo.ID, userInfo.Username, a.tokenTimeLimit)
		}
	}

	valid, err := a.passwordHasher.VerifyPassword(password, userInfo.PasswordHash)
	if err != nil {
		return "", err
	}

	if !valid {
		return "", &domain.CredentialsMismatchError{Msg: "username or password is incorrect"}
	}

	return a.tokenIssuer.IssueToken(a.secretKey, userInfo.ID, userInfo.Username, a.tokenTimeLimit)
}
