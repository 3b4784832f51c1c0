package errors

import (
	"net/http"

	"comerciaya/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError with the same error code, so copies made by
// WithDetails still match the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos enviados no son válidos",
		"",
	)

	ErrInvalidCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CATEGORY",
		"La categoría no es válida",
		"",
	)

	ErrInvalidScore = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SCORE",
		"La puntuación debe estar entre 1 y 5",
		"",
	)

	ErrInvalidOfferingKind = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OFFERING_KIND",
		"El tipo debe ser producto o servicio",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"La contraseña no cumple los requisitos mínimos",
		"",
	)

	ErrInvalidImage = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMAGE",
		"Solo se permiten imágenes jpg, jpeg, png o webp",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Correo o contraseña incorrectos",
		"",
	)

	ErrTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MISSING",
		"Token no proporcionado",
		"",
	)

	ErrTokenMalformed = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MALFORMED",
		"Token inválido",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token expirado",
		"",
	)

	ErrTokenRevoked = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_REVOKED",
		"La sesión fue cerrada",
		"",
	)

	// Authorization-related errors.
	// Absent, inactive and foreign resources share ErrNotFound on purpose.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"RESOURCE_NOT_FOUND",
		"Recurso no encontrado o no autorizado",
		"",
	)

	ErrSelfRating = NewBaseError(
		http.StatusForbidden,
		"SELF_RATING_FORBIDDEN",
		"No puedes valorar tu propio emprendimiento",
		"",
	)

	// Conflict-related errors
	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"El correo ya está registrado",
		"",
	)

	ErrPhoneAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PHONE_ALREADY_EXISTS",
		"El teléfono ya está registrado",
		"",
	)

	ErrDuplicateRating = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_RATING",
		"Ya has valorado este emprendimiento",
		"",
	)

	// Dependency-related errors
	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"No se pudo subir la imagen",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Error procesando la contraseña",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"No se pudo generar el token",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Falló la transacción de base de datos",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del servidor",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Error ejecutando la consulta"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
