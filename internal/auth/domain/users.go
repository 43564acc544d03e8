package domain

import "context"

type UsersRepository interface {
	TryGetUserInfo(ctx context.Context, username string) (UserInfo, bool, error)
	CreateUserIfAbsent(ctx context.Context, username, passwordHash string) (UserInfo, error)
}

type UserInfo struct {
	ID           int
	Username     string
	PasswordHash string
}

// PasswordHasher reports a wrong password as (false, nil); errors are reserved for hashing failures.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hashedPassword string) (bool, error)
}
