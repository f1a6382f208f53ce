package errors

import "errors"

// As is errors.As narrowed to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the code, defaulting to Internal for foreign errors
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Meta
	}
	return nil
}

// GetMessage extracts the user facing message
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsNotFound checks for CodeNotFound
func IsNotFound(err error) bool { return GetCode(err) == CodeNotFound }

// IsInvalidArgument checks for CodeInvalidArgument
func IsInvalidArgument(err error) bool { return GetCode(err) == CodeInvalidArgument }

// IsFailedPrecondition checks for CodeFailedPrecondition
func IsFailedPrecondition(err error) bool { return GetCode(err) == CodeFailedPrecondition }

// IsInternal checks for CodeInternal
func IsInternal(err error) bool { return GetCode(err) == CodeInternal }

// IsResourceExhausted checks for CodeResourceExhausted
func IsResourceExhausted(err error) bool { return GetCode(err) == CodeResourceExhausted }
