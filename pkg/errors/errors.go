package errors

import "fmt"

// ErrNotFound indicates a resource does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrUnauthorized indicates a failed authentication attempt
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	return e.Message
}

// ErrValidation indicates an order failed local validation and must not be
// sent to the remote API
type ErrValidation struct {
	OrderID string
	Reason  string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("order %s invalid: %s", e.OrderID, e.Reason)
}

// ErrInvalidStateTransition indicates an order status change that the
// lifecycle does not allow
type ErrInvalidStateTransition struct {
	From interface{}
	To   interface{}
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %v to %v", e.From, e.To)
}
