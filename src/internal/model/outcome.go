package model

// Mutation is the body of every command: Applied is false when the command
// was a no-op, with Reason saying why. Record is the state after the call.
type Mutation[T any] struct {
	Applied bool   `json:"applied"`
	Reason  string `json:"reason,omitempty"`
	Record  T      `json:"record"`
}

func Applied[T any](record T) *Mutation[T] {
	return &Mutation[T]{Applied: true, Record: record}
}

func Rejected[T any](err error, record T) *Mutation[T] {
	return &Mutation[T]{Applied: false, Reason: err.Error(), Record: record}
}

// IDRequest addresses a single record from a path parameter.
type IDRequest struct {
	ID string `json:"-" validate:"required,max=100"`
}
