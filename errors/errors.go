package errors

import "fmt"

var (
	ErrValidation       = fmt.Errorf("validation failed")
	ErrMalformedPayload = fmt.Errorf("malformed JSON payload")
	ErrUnsupportedMedia = fmt.Errorf("unsupported media type")
	ErrUnknownCommand   = fmt.Errorf("unknown command")
	ErrPayloadTooLarge  = fmt.Errorf("payload exceeds size limit")
	ErrMissingArgument  = fmt.Errorf("missing argument")
	ErrInvalidInterval  = fmt.Errorf("interval must be positive")
)
