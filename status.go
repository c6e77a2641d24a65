package gpufilter

import (
	"errors"
	"fmt"
)

// Status is the outcome of a gpufilter operation. Values are stable.
type Status uint8

const (
	StatusOK Status = iota
	StatusUnknownError
	StatusFramebufferConstructionFailed
	StatusNoSuchParameter
	StatusOutOfMemory
	StatusInvalidTexture
	StatusInvalidFramebuffer
	StatusInvalidProgram
)

var statusNames = [...]string{
	StatusOK:                            "ok",
	StatusUnknownError:                  "unknown error",
	StatusFramebufferConstructionFailed: "framebuffer construction failed",
	StatusNoSuchParameter:               "no such parameter",
	StatusOutOfMemory:                   "out of memory",
	StatusInvalidTexture:                "invalid texture",
	StatusInvalidFramebuffer:            "invalid framebuffer",
	StatusInvalidProgram:                "invalid program",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Error implements error so a Status can be returned directly.
func (s Status) Error() string {
	return "gpufilter: " + s.String()
}

// StatusOf returns the status carried by err. A nil error is StatusOK and
// errors that do not wrap a Status are StatusUnknownError.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var s Status
	if errors.As(err, &s) {
		return s
	}
	return StatusUnknownError
}
