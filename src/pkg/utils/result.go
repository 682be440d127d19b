package utils

// Result is what every usecase hands back to its caller.
type Result struct {
	Data  interface{}
	Error error
}
