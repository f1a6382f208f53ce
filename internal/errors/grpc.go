package errors

import (
	"fmt"
	"sort"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain is stamped on every ErrorInfo detail we emit
const ErrorDomain = "raidplanner"

// ToGRPCError converts an error into a gRPC status error. Metadata travels as
// an errdetails.ErrorInfo detail with stringified values.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var e *Error
	if !As(err, &e) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(e.Code.GRPCCode(), e.Message)
	if len(e.Meta) > 0 {
		info := &errdetails.ErrorInfo{
			Reason:   string(e.Code),
			Domain:   ErrorDomain,
			Metadata: stringifyMeta(e.Meta),
		}
		if withDetails, detailErr := st.WithDetails(info); detailErr == nil {
			st = withDetails
		}
	}
	return st.Err()
}

// FromGRPCError converts a gRPC status error back into an *Error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	e := &Error{Code: codeFromGRPC(st.Code()), Message: st.Message()}
	for _, detail := range st.Details() {
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorDomain {
			continue
		}
		for k, v := range info.GetMetadata() {
			e.WithMeta(k, v)
		}
		break
	}
	return e
}

func stringifyMeta(meta map[string]any) map[string]string {
	out := make(map[string]string, len(meta))
	for k, v := range meta {
		switch val := v.(type) {
		case string:
			out[k] = val
		case map[string][]string:
			keys := make([]string, 0, len(val))
			for field := range val {
				keys = append(keys, field)
			}
			sort.Strings(keys)
			s := ""
			for i, field := range keys {
				if i > 0 {
					s += "; "
				}
				s += fmt.Sprintf("%s: %v", field, val[field])
			}
			out[k] = s
		default:
			out[k] = fmt.Sprint(val)
		}
	}
	return out
}
