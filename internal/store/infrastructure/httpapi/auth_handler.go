package httpapi

import (
	"net/http"

	"github.com/Lexv0lk/merch-ledger/internal/pkg/jwt"
	"github.com/Lexv0lk/merch-ledger/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authenticator jwt.Authenticator
	logger        logging.Logger
}

func NewAuthHandler(authenticator jwt.Authenticator, logger logging.Logger) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		logger:        logger,
	}
}

func (h *AuthHandler) Authenticate(c *gin.Context) {
	var body authRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Errors: "invalid request body"})
		return
	}

	token, err := h.authenticator.Authenticate(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{Token: token})
}
