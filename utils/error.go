package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind classifies failures surfaced to the caller of a user action.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindAuth         ErrorKind = "auth"
	KindVerification ErrorKind = "verification"
	KindStore        ErrorKind = "store"
	KindScheduling   ErrorKind = "scheduling"
	KindNotFound     ErrorKind = "not_found"

	// KindPendingApproval is only produced by the HTTP approval gate.
	KindPendingApproval ErrorKind = "pending_approval"
)

// AppError is the single error type returned by the service layer.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

var (
	ErrExpired              = errors.New("verification code expired")
	ErrInvalidCode          = errors.New("invalid verification code")
	ErrVerificationRequired = errors.New("email verification required")
	ErrPendingApproval      = errors.New("account awaiting admin approval")
)

func ValidationError(format string, args ...any) error {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func AuthError(format string, args ...any) error {
	return &AppError{Kind: KindAuth, Message: fmt.Sprintf(format, args...)}
}

func NotFoundError(format string, args ...any) error {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// VerificationError wraps one of ErrExpired, ErrInvalidCode or ErrVerificationRequired.
func VerificationError(cause error, message string) error {
	return &AppError{Kind: KindVerification, Message: message, Err: cause}
}

func StoreError(op string, err error) error {
	return &AppError{Kind: KindStore, Message: op, Err: err}
}

func SchedulingError(format string, args ...any) error {
	return &AppError{Kind: KindScheduling, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of an AppError anywhere in the chain, or "" if none.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError aborts the request with a standardized JSON error response.
func JSONError(c *gin.Context, status int, kind ErrorKind, message string, details string) {
	GetLogger().Debug(message, zap.String("path", c.FullPath()), zap.Int("status", status), zap.String("details", details))
	c.AbortWithStatusJSON(status, ErrorResponse{Message: message, Kind: string(kind), Details: details})
}

// StatusFor maps an error kind onto an HTTP status code.
func StatusFor(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindVerification:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	case KindScheduling:
		return http.StatusConflict
	case KindStore:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err to the client using its kind.
func RespondError(c *gin.Context, err error) {
	status := StatusFor(err)
	var appErr *AppError
	if !errors.As(err, &appErr) {
		GetLogger().Error("unclassified error", zap.String("path", c.FullPath()), zap.Error(err))
		c.AbortWithStatusJSON(status, ErrorResponse{Message: "Something went wrong. Please try again."})
		return
	}
	if status >= http.StatusInternalServerError {
		GetLogger().Error(appErr.Message, zap.String("path", c.FullPath()), zap.Error(err))
	} else {
		GetLogger().Debug(appErr.Message, zap.String("path", c.FullPath()), zap.Error(err))
	}
	resp := ErrorResponse{Message: appErr.Message, Kind: string(appErr.Kind)}
	if appErr.Err != nil && appErr.Kind != KindStore {
		resp.Details = appErr.Err.Error()
	}
	c.AbortWithStatusJSON(status, resp)
}
