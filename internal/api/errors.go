package api

import "fmt"

// AppError is an application-level failure reported by the backend in the
// "error" field of an otherwise well-formed response.
type AppError struct {
	Endpoint string
	Message  string
}

func (e *AppError) Error() string {
	return e.Message
}

// TransportError indicates the request never completed or the response
// could not be decoded.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
