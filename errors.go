package mipidsi

import (
	"errors"
	"fmt"
)

// Stage is the part of the initialization that failed.
type Stage uint8

const (
	// StageInterface is a bus failure.
	StageInterface Stage = iota
	// StageResetPin is a failure to drive the reset pin.
	StageResetPin
	// StageConfiguration is an invalid configuration, see
	// options.ConfigurationError.
	StageConfiguration
)

func (s Stage) String() string {
	switch s {
	case StageInterface:
		return "interface"
	case StageResetPin:
		return "reset pin"
	case StageConfiguration:
		return "configuration"
	default:
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
}

// InitError is returned by Builder.Init.
type InitError struct {
	Stage Stage
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("mipidsi: init failed (%s): %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// ErrBuilderUsed is returned when Init is called twice on the same Builder.
var ErrBuilderUsed = errors.New("mipidsi: builder already used")
