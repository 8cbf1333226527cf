package chains

import "errors"

var (
	// ErrNilChain is returned when a chain description or one of its
	// children is nil.
	ErrNilChain = errors.New("nil chain")

	// ErrEmptyGroup is returned when a Series, Parallel or Split has no children.
	ErrEmptyGroup = errors.New("group has no children")

	// ErrRecursiveArity is returned when a Recursive group does not have
	// exactly a forward and a feedback child.
	ErrRecursiveArity = errors.New("recursive group needs exactly two children")

	// ErrUnknownParam is returned when a module sets or exposes a parameter
	// that its kernel does not declare.
	ErrUnknownParam = errors.New("unknown parameter")

	// ErrWidthMismatch is returned when connected nodes disagree on the
	// number of samples they exchange per tick.
	ErrWidthMismatch = errors.New("frame width mismatch")

	// ErrInvalidParam is returned for malformed parameter descriptors.
	ErrInvalidParam = errors.New("invalid parameter")

	// ErrDuplicateParam is returned when a kernel declares two parameters
	// with the same name.
	ErrDuplicateParam = errors.New("duplicate parameter")

	errEmptyKernelName = errors.New("empty kernel name")
	errNilFactory      = errors.New("nil factory")
	errInvalidWidth    = errors.New("kernel input width must be > 0")
)
