package domain

import (
	"errors"
	"fmt"
)

// Domain errors (виды ошибок, которые видит вызывающий)
var (
	// Lookup errors
	ErrUserNotFound  = errors.New("user not found")
	ErrUnknownCaller = errors.New("caller token does not resolve to a user")

	// Authorization errors
	ErrUnauthorized = errors.New("user not authorized to access this data")

	// Validation errors
	ErrInvalidField = errors.New("invalid user field")
	ErrInvalidValue = errors.New("invalid value")

	// Conflict errors
	ErrUserAlreadyExists = errors.New("user already exists")

	// Collaborator errors
	ErrExternalSync = errors.New("external identity sync failed")
	ErrStore        = errors.New("user store failure")

	// Throttling
	ErrRateLimited = errors.New("too many requests")
)

// kinds в порядке проверки; первый совпавший вид побеждает.
var kinds = []error{
	ErrUserNotFound,
	ErrUnknownCaller,
	ErrUnauthorized,
	ErrInvalidField,
	ErrInvalidValue,
	ErrUserAlreadyExists,
	ErrExternalSync,
	ErrRateLimited,
	ErrStore,
}

// KindOf возвращает вид ошибки или nil, если ошибка не относится ни к одному виду.
func KindOf(err error) error {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// Classify гарантирует, что ошибка относится ровно к одному виду.
// Неизвестные ошибки становятся fallback (ErrStore или ErrExternalSync).
func Classify(err error, fallback error) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != nil {
		return err
	}
	return fmt.Errorf("%w: %v", fallback, err)
}

// HTTPError для соответствия OpenAPI
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrUserNotFound:      {Code: "NOT_FOUND", Message: "user not found"},
	ErrUnknownCaller:     {Code: "UNKNOWN_CALLER", Message: "caller is not a known user"},
	ErrUnauthorized:      {Code: "UNAUTHORIZED", Message: "user not authorized to access this data"},
	ErrInvalidField:      {Code: "INVALID_FIELD", Message: "invalid user field"},
	ErrInvalidValue:      {Code: "INVALID_VALUE", Message: "invalid value"},
	ErrUserAlreadyExists: {Code: "USER_EXISTS", Message: "user already exists"},
	ErrExternalSync:      {Code: "EXTERNAL_ERROR", Message: "identity platform sync failed"},
	ErrStore:             {Code: "STORE_ERROR", Message: "user store failure"},
	ErrRateLimited:       {Code: "RATE_LIMITED", Message: "too many requests"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку. В сообщение попадает
// полный текст ошибки, чтобы клиент видел причину отказа.
func ToHTTPError(err error) (HTTPError, bool) {
	kind := KindOf(err)
	if kind == nil {
		return HTTPError{}, false
	}
	httpErr := ErrorMapping[kind]
	httpErr.Message = err.Error()
	return httpErr, true
}
