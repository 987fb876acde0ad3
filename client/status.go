package client

// Status is the envelope status tag the backend attaches to every response.
// Callers must switch on it; a nil transport error never implies success.
type Status string

const (
	StatusOK                   Status = "OK"
	StatusNotFound             Status = "NOT_FOUND"
	StatusDuplicateEntity      Status = "DUPLICATE_ENTITY"
	StatusAlreadyUsedElsewhere Status = "ALREADY_USED_ELSEWHERE"
	StatusArgumentNotValid     Status = "ARGUMENT_NOT_VALID"
	StatusNotMatch             Status = "NOT_MATCH"
	StatusException            Status = "EXCEPTION"
)
