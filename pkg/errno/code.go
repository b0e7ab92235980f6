package errno

// Errno defines a business error code.
type Errno struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *Errno) Error() string {
	return e.Message
}

var (
	OK = &Errno{Code: 200, Message: "Success"}

	ErrParameterInvalid = &Errno{Code: 400, Message: "Invalid parameter"}
	ErrNotFound         = &Errno{Code: 404, Message: "Not found"}

	ErrPersonInactive      = &Errno{Code: 422, Message: "Person is not active"}
	ErrResourceUnavailable = &Errno{Code: 423, Message: "No copies available"}
	ErrLoanNotReturnable   = &Errno{Code: 424, Message: "Loan is already closed"}

	ErrInternalServer = &Errno{Code: 500, Message: "Internal server error"}
	ErrDatabase       = &Errno{Code: 501, Message: "Database error"}
	ErrUnknown        = &Errno{Code: 510, Message: "Unknown error"}
)
