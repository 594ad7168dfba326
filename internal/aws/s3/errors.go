package s3

import (
	"errors"

	"github.com/aws/smithy-go"
)

// ProviderError is an error reported by the storage service itself, as
// opposed to a transport, credential or client-side failure.
type ProviderError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// AsProviderError extracts the service-reported error from err, if any.
// Access denied, missing buckets and throttling all surface here.
func AsProviderError(err error) (*ProviderError, bool) {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return nil, false
	}
	msg := apiErr.ErrorMessage()
	if msg == "" {
		msg = apiErr.ErrorCode()
	}
	return &ProviderError{
		Code:    apiErr.ErrorCode(),
		Message: msg,
		Err:     err,
	}, true
}
