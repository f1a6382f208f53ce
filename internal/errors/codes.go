package errors

import "google.golang.org/grpc/codes"

// Code classifies an error for callers and transports
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

var grpcCodes = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeCanceled:           codes.Canceled,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeDeadlineExceeded:   codes.DeadlineExceeded,
	CodeNotFound:           codes.NotFound,
	CodeAlreadyExists:      codes.AlreadyExists,
	CodeResourceExhausted:  codes.ResourceExhausted,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeUnimplemented:      codes.Unimplemented,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
}

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// GRPCCode returns the matching gRPC status code
func (c Code) GRPCCode() codes.Code {
	if gc, ok := grpcCodes[c]; ok {
		return gc
	}
	return codes.Unknown
}

func codeFromGRPC(gc codes.Code) Code {
	for c, candidate := range grpcCodes {
		if candidate == gc {
			return c
		}
	}
	return CodeInternal
}
