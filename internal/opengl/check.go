package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// ErrorKind classifies a glGetError code.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidEnum
	ErrInvalidValue
	ErrInvalidOperation
	ErrInvalidFramebufferOperation
	ErrOutOfMemory
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidEnum:
		return "invalid enum"
	case ErrInvalidValue:
		return "invalid value"
	case ErrInvalidOperation:
		return "invalid operation"
	case ErrInvalidFramebufferOperation:
		return "invalid framebuffer operation"
	case ErrOutOfMemory:
		return "out of memory"
	}
	return "unknown"
}

func kindOf(code uint32) ErrorKind {
	switch code {
	case gl.INVALID_ENUM:
		return ErrInvalidEnum
	case gl.INVALID_VALUE:
		return ErrInvalidValue
	case gl.INVALID_OPERATION:
		return ErrInvalidOperation
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return ErrInvalidFramebufferOperation
	case gl.OUT_OF_MEMORY:
		return ErrOutOfMemory
	}
	return ErrUnknown
}

// GLError is a non-zero glGetError result observed after Op.
type GLError struct {
	Op   string
	Code uint32
	Kind ErrorKind
}

func (e *GLError) Error() string {
	return fmt.Sprintf("gl error after %s: %s (0x%X)", e.Op, e.Kind, e.Code)
}

// CheckError returns the first pending GL error as a *GLError and drains
// the rest of the queue.
func CheckError(op string) error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	for gl.GetError() != gl.NO_ERROR {
	}
	return &GLError{Op: op, Code: code, Kind: kindOf(code)}
}

// FramebufferError reports an incomplete framebuffer.
type FramebufferError struct {
	Status        uint32
	Width, Height int
}

func (e *FramebufferError) Error() string {
	return fmt.Sprintf("framebuffer %dx%d incomplete (0x%X)", e.Width, e.Height, e.Status)
}
