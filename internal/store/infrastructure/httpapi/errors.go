package httpapi

import (
	"errors"
	"net/http"

	authdomain "github.com/Lexv0lk/merch-ledger/internal/auth/domain"
	"github.com/Lexv0lk/merch-ledger/internal/pkg/logging"
	"github.com/Lexv0lk/merch-ledger/internal/store/domain"
	"github.com/gin-gonic/gin"
)

const (
	internalErrorMessage    = "internal server error"
	unavailableErrorMessage = "service temporarily unavailable, retry later"
)

func errorStatus(err error) int {
	switch {
	case errors.Is(err, &authdomain.CredentialsMismatchError{}):
		return http.StatusUnauthorized
	case errors.Is(err, &authdomain.InvalidCredentialsError{}),
		errors.Is(err, &domain.UserNotFoundError{}),
		errors.Is(err, &domain.GoodNotFoundError{}),
		errors.Is(err, &domain.InsufficientBalanceError{}),
		errors.Is(err, &domain.InvalidArgumentsError{}),
		errors.Is(err, &domain.LimitExceededError{}):
		return http.StatusBadRequest
	case errors.Is(err, &domain.ConflictError{}),
		errors.Is(err, &domain.StoreUnavailableError{}):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage returns the Msg of the domain error inside err, without the wrapping added on the way up.
func clientMessage(err error) string {
	var (
		credentialsMismatch *authdomain.CredentialsMismatchError
		invalidCredentials  *authdomain.InvalidCredentialsError
		userNotFound        *domain.UserNotFoundError
		goodNotFound        *domain.GoodNotFoundError
		insufficientBalance *domain.InsufficientBalanceError
		invalidArguments    *domain.InvalidArgumentsError
		limitExceeded       *domain.LimitExceededError
	)

	switch {
	case errors.As(err, &credentialsMismatch):
		return credentialsMismatch.Msg
	case errors.As(err, &invalidCredentials):
		return invalidCredentials.Msg
	case errors.As(err, &userNotFound):
		return userNotFound.Msg
	case errors.As(err, &goodNotFound):
		return goodNotFound.Msg
	case errors.As(err, &insufficientBalance):
		return insufficientBalance.Msg
	case errors.As(err, &invalidArguments):
		return invalidArguments.Msg
	case errors.As(err, &limitExceeded):
		return limitExceeded.Msg
	default:
		return err.Error()
	}
}

// writeError answers with the mapped status. Messages of unexpected and transient errors stay in the log.
func writeError(c *gin.Context, logger logging.Logger, err error) {
	status := errorStatus(err)

	var message string
	switch status {
	case http.StatusInternalServerError:
		logger.Error("request failed", "path", c.FullPath(), "request_id", c.GetString(RequestIDKey), "error", err.Error())
		message = internalErrorMessage
	case http.StatusServiceUnavailable:
		logger.Warn("store unavailable", "path", c.FullPath(), "request_id", c.GetString(RequestIDKey), "error", err.Error())
		message = unavailableErrorMessage
	default:
		message = clientMessage(err)
	}

	c.AbortWithStatusJSON(status, errorResponse{Errors: message})
}
