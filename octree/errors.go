package octree

import (
	"errors"
	"fmt"
)

/*
Errors that can be returned by the octree package.
*/

////////////////////////////////////////////////////////////////////////////////

// ErrNilNode is returned when a nil node is inserted.
var ErrNilNode = errors.New("cannot insert a nil node")

// OutOfBoundsError is returned when a coordinate lies outside the extent of
// the tree.
type OutOfBoundsError struct {
	Axis  string
	Value uint32
	Side  uint64
}

// Error returns a string representation of the error.
func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s coordinate %d out of range [0, %d)", e.Axis, e.Value, e.Side)
}

// Is returns true if the target error is an OutOfBoundsError.
func (e OutOfBoundsError) Is(target error) bool {
	_, ok := target.(OutOfBoundsError)
	return ok
}

// DepthOverflowError is returned when a depth would make the side length of
// the tree overflow the coordinate type.
type DepthOverflowError struct {
	Depth uint8
	Limit uint8
}

// Error returns a string representation of the error.
func (e DepthOverflowError) Error() string {
	return fmt.Sprintf("depth %d exceeds limit %d", e.Depth, e.Limit)
}

// Is returns true if the target error is a DepthOverflowError.
func (e DepthOverflowError) Is(target error) bool {
	_, ok := target.(DepthOverflowError)
	return ok
}

// TooDeepError is returned when an inserted subtree has more levels than fit
// below the insertion depth.
type TooDeepError struct {
	Height uint8
	Room   uint8
}

// Error returns a string representation of the error.
func (e TooDeepError) Error() string {
	return fmt.Sprintf("subtree of height %d does not fit in %d remaining levels", e.Height, e.Room)
}

// Is returns true if the target error is a TooDeepError.
func (e TooDeepError) Is(target error) bool {
	_, ok := target.(TooDeepError)
	return ok
}

// BelowUnitCellError is returned when an insert would descend past a unit
// cell.
type BelowUnitCellError struct {
	Size  uint32
	Depth uint8
}

func (e BelowUnitCellError) Error() string {
	return fmt.Sprintf("cannot descend %d levels below a node of size %d", e.Depth, e.Size)
}

func (e BelowUnitCellError) Is(target error) bool {
	_, ok := target.(BelowUnitCellError)
	return ok
}

// UnexpectedNodeError is returned when a node of the wrong type is found in
// the tree.
type UnexpectedNodeError struct {
	expected NodeType
	found    Node
}

// Error returns a string representation of the error.
func (e UnexpectedNodeError) Error() string {
	return fmt.Sprintf("expected %s but found %T - tree is corrupt", e.expected, e.found)
}

// Is returns true if the target error is an UnexpectedNodeError.
func (e UnexpectedNodeError) Is(target error) bool {
	_, ok := target.(UnexpectedNodeError)
	return ok
}

func NewUnexpectedNodeError(expected NodeType, found Node) error {
	return UnexpectedNodeError{
		expected: expected,
		found:    found,
	}
}
