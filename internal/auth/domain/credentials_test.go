package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentials_Validate(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		credentials Credentials
		expectedErr string
	}

	tests := []testCase{
		{
			name:        "valid credentials",
			credentials: Credentials{Username: "alice", Password: "P@ssw0rd!"},
		},
		{
			name:        "longest allowed values",
			credentials: Credentials{Username: strings.Repeat("a", 100), Password: strings.Repeat("~", 100)},
		},
		{
			name:        "empty username",
			credentials: Credentials{Password: "secret"},
			expectedErr: "username is required",
		},
		{
			name:        "empty password",
			credentials: Credentials{Username: "alice"},
			expectedErr: "password is required",
		},
		{
			name:        "username too long",
			credentials: Credentials{Username: strings.Repeat("a", 101), Password: "secret"},
			expectedErr: "username must not exceed 100 characters",
		},
		{
			name:        "password too long",
			credentials: Credentials{Username: "alice", Password: strings.Repeat("a", 300)},
			expectedErr: "password must not exceed 100 characters",
		},
		{
			name:        "space in username",
			credentials: Credentials{Username: "alice smith", Password: "secret"},
			expectedErr: "username must contain only visible ASCII characters",
		},
		{
			name:        "non-ASCII password",
			credentials: Credentials{Username: "alice", Password: "пароль"},
			expectedErr: "password must contain only visible ASCII characters",
		},
		{
			name:        "control character in username",
			credentials: Credentials{Username: "alice\n", Password: "secret"},
			expectedErr: "username must contain only visible ASCII characters",
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.credentials.Validate()

			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, &InvalidCredentialsError{})
			assert.EqualError(t, err, tt.expectedErr)
		})
	}
}
