package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

// PanicError carries a recovered panic value and the stack at the point of
// recovery.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.Value)
}

// Unwrap exposes a panicked error value to errors.Is and errors.As.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ErrorResponder writes the response for an unhandled error.
type ErrorResponder func(w http.ResponseWriter, r *http.Request, err error)

// Recoverer is a middleware that recovers from panics.
// The panic is handed to respond as a *PanicError; respond is responsible
// for logging it and writing the 500.
func Recoverer(respond ErrorResponder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					// Let net/http abort the connection as requested.
					if e, ok := rvr.(error); ok && errors.Is(e, http.ErrAbortHandler) {
						panic(rvr)
					}

					respond(w, r, &PanicError{Value: rvr, Stack: debug.Stack()})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
