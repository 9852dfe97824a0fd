package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "kyc-chain.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error maps an engine error onto an HTTP response. Every failure the
// engine produces is a normal, expected outcome; the payload carries the
// taxonomy name so the UI can branch on it.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{
			"code":    appErr.Code,
			"error":   taxonomy(appErr.Err),
			"message": appErr.Message,
		})
		return
	}

	status := statusFor(err)
	c.JSON(status, gin.H{
		"code":    status,
		"error":   taxonomy(err),
		"message": err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerrors.ErrAlreadyExists),
		errors.Is(err, domainerrors.ErrRequestExists):
		return http.StatusConflict
	case errors.Is(err, domainerrors.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerrors.ErrUnauthorized),
		errors.Is(err, domainerrors.ErrBankNotApproved):
		return http.StatusForbidden
	case errors.Is(err, domainerrors.ErrInvalidAddress),
		errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, domainerrors.ErrInvalidSignature),
		errors.Is(err, domainerrors.ErrTokenExpired):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func taxonomy(err error) string {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return "NotFound"
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return "AlreadyExists"
	case errors.Is(err, domainerrors.ErrRequestExists):
		return "RequestExists"
	case errors.Is(err, domainerrors.ErrInvalidTransition):
		return "InvalidTransition"
	case errors.Is(err, domainerrors.ErrUnauthorized),
		errors.Is(err, domainerrors.ErrBankNotApproved):
		return "Unauthorized"
	case errors.Is(err, domainerrors.ErrInvalidAddress),
		errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrBadRequest):
		return "BadRequest"
	case errors.Is(err, domainerrors.ErrInvalidSignature),
		errors.Is(err, domainerrors.ErrTokenExpired):
		return "Unauthenticated"
	default:
		return "Internal"
	}
}
