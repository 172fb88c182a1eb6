package core

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrTemplateNotFound = errors.New("template not found")
)

// Error is the JSON envelope handlers return on failure: a message plus
// the flattened cause chain.
type Error struct {
	Message string   `json:"message,omitempty"`
	Err     []string `json:"err,omitempty"`
}

func NewError(message string, errs ...error) *Error {
	e := &Error{Message: message}
	for _, err := range errs {
		if err != nil {
			e.Err = append(e.Err, err.Error())
		}
	}

	return e
}

func (e *Error) Error() string {
	//nolint:errchkjson
	data, _ := json.Marshal(e)
	return string(data)
}

func (e *Error) Unwrap() error {
	if e == nil || len(e.Err) == 0 {
		return nil
	}

	errs := make([]error, len(e.Err))
	for i, msg := range e.Err {
		errs[i] = fmt.Errorf("%s", msg)
	}

	return errors.Join(errs...)
}

func (e *Error) Messages() []string {
	return e.Err
}
