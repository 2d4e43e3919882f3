// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "time"

// TimestampLayout renders timestamps with millisecond precision,
// e.g. 2024-05-01T10:30:00.123Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Response is the envelope wrapping every JSON response body.
// Successful responses carry Data or Message; failed responses carry Error
// and never Data.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Empty is the Data type for envelopes that never carry data.
type Empty struct{}

// OK wraps data in a successful envelope.
func OK[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: &data}
}

// Message builds a successful envelope carrying only a message.
func Message(msg string) Response[Empty] {
	return Response[Empty]{Success: true, Message: msg}
}

// Fail builds a failed envelope carrying an error message.
func Fail(errMsg string) Response[Empty] {
	return Response[Empty]{Success: false, Error: errMsg}
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
