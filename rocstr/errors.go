package rocstr

import (
	"github.com/juju/errors"
)

const defaultCapacityMessage = "CAPACITY ERROR : this RocStr cannot contains this string."

// InsufficientCapacity is the error returned by the Try* functions when the
// text doesn't fit. It only carries a message of at most 57 bytes; longer
// messages are truncated like any RocStr.
//
// It's comparable, so errors.Is works against ErrInsufficientCapacity.
type InsufficientCapacity struct {
	msg RocStr[[57]byte]
}

// ErrInsufficientCapacity is the InsufficientCapacity with the default
// message.
var ErrInsufficientCapacity = NewInsufficientCapacity(defaultCapacityMessage)

func NewInsufficientCapacity(msg string) InsufficientCapacity {
	return InsufficientCapacity{msg: From[[57]byte](msg)}
}

// InsufficientCapacityOf returns an InsufficientCapacity with msg as the
// message, whatever its capacity is.
func InsufficientCapacityOf[B Buffer](msg RocStr[B]) InsufficientCapacity {
	return InsufficientCapacity{msg: Reshape[[57]byte](msg)}
}

func (e InsufficientCapacity) Error() string {
	return e.msg.String()
}

func (e InsufficientCapacity) Message() RocStr[[57]byte] {
	return e.msg
}

// IsInsufficientCapacity reports whether the cause of err is an
// InsufficientCapacity, also when it was annotated with juju/errors.
func IsInsufficientCapacity(err error) bool {
	_, ok := errors.Cause(err).(InsufficientCapacity)
	return ok
}
