package scan

import (
	"errors"
	"reflect"
)

// ErrNilSink is returned when Register is called without a Sink.
var ErrNilSink = errors.New("scan: nil sink")

// ContractMismatchError reports an explicitly declared contract type that is
// neither the implementation type itself nor one of its declared interfaces.
// It aborts the entire registration pass.
type ContractMismatchError struct {
	// Impl is the implementation type whose marker declared the contract.
	Impl reflect.Type

	// Contract is the offending contract type.
	Contract reflect.Type
}

// Error implements the error interface.
func (e *ContractMismatchError) Error() string {
	// Example: scan: type *mailer.SMTPMailer declares contract mailer.Billing it neither is nor implements
	return "scan: type " + e.Impl.String() + " declares contract " + e.Contract.String() +
		" it neither is nor implements"
}
