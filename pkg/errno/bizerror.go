package errno

import "fmt"

// BizError is a business error carrying an Errno code, an optional
// underlying cause and the scene it happened in.
type BizError interface {
	error
	Code() int
	Message() string
	Unwrap() error
}

type simpleBizError struct {
	errno *Errno
	cause error
	scene string
}

// NewSimpleBizError wraps an Errno with a cause and a short scene label
// (for example "query" or "body").
func NewSimpleBizError(e *Errno, cause error, scene string) BizError {
	if e == nil {
		e = ErrUnknown
	}
	return &simpleBizError{errno: e, cause: cause, scene: scene}
}

func (e *simpleBizError) Code() int { return e.errno.Code }

func (e *simpleBizError) Message() string {
	if e.scene == "" {
		return e.errno.Message
	}
	return fmt.Sprintf("%s: %s", e.errno.Message, e.scene)
}

func (e *simpleBizError) Error() string {
	if e.cause == nil {
		return e.Message()
	}
	return fmt.Sprintf("%s: %v", e.Message(), e.cause)
}

func (e *simpleBizError) Unwrap() error { return e.cause }
