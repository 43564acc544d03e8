package ledger

import (
	"context"
	"errors"

	"github.com/Lexv0lk/merch-ledger/internal/auth/domain"
	storedomain "github.com/Lexv0lk/merch-ledger/internal/store/domain"
)

type StoreUsers interface {
	storedomain.UserFinder
	storedomain.UserProvisioner
}

// UsersRepository exposes ledger accounts to the auth flow. Credentials live on the same row as the balance.
type UsersRepository struct {
	users StoreUsers
}

func NewUsersRepository(users StoreUsers) *UsersRepository {
	return &UsersRepository{
		users: users,
	}
}

func (r *UsersRepository) TryGetUserInfo(ctx context.Context, username string) (domain.UserInfo, bool, error) {
	user, err := r.users.GetUserByName(ctx, username)
	if err != nil {
		if errors.Is(err, &storedomain.UserNotFoundError{}) {
			return domain.UserInfo{}, false, nil
		}

		return domain.UserInfo{}, false, err
	}

	return toUserInfo(user), true, nil
}

func (r *UsersRepository) CreateUserIfAbsent(ctx context.Context, username, passwordHash string) (domain.UserInfo, error) {
	user, err := r.users.CreateUserIfAbsent(ctx, username, passwordHash)
	if err != nil {
		return domain.UserInfo{}, err
	}

	return toUserInfo(user), nil
}

func toUserInfo(user storedomain.User) domain.UserInfo {
	return domain.UserInfo{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
	}
}
