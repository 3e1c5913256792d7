package optionmc

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
)

var (
	// ErrInvalidParameter is returned when a model or contract input is out
	// of its domain (non-positive price, maturity, step or strike, negative
	// volatility, a path count below one, or a non-finite number).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidOptionKind is returned when an option kind is neither a call
	// nor a put.
	ErrInvalidOptionKind = errors.New("invalid option kind")
)

func invalidParameter(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	glog.Error(msg)
	return fmt.Errorf("%w: %s", ErrInvalidParameter, msg)
}

func invalidOptionKind(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	glog.Error(msg)
	return fmt.Errorf("%w: %s", ErrInvalidOptionKind, msg)
}
