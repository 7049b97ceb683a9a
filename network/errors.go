package network

// Error represents an error building a network
type Error string

const (
	// ErrEmptyName is returned for node specifications without a name
	ErrEmptyName = Error("node without name")
	// ErrDuplicateNode is returned when two nodes share a name
	ErrDuplicateNode = Error("duplicate node")
	// ErrUnknownParent is returned when a node names a parent that
	// is not defined anywhere in the network
	ErrUnknownParent = Error("unknown parent")
	// ErrOutOfTopologicalOrder is returned when a node names a parent
	// that is not listed before it
	ErrOutOfTopologicalOrder = Error("parent listed after child")
	// ErrDuplicateParent is returned when a node lists a parent twice
	ErrDuplicateParent = Error("duplicate parent")
	// ErrTooManyParents is returned when a node has more than MaxParents
	// parents
	ErrTooManyParents = Error("too many parents")
	// ErrIncompleteTable is returned when the probability table of a node
	// lacks an entry for some configuration of its parents
	ErrIncompleteTable = Error("incomplete probability table")
	// ErrInvalidTable is returned when the probability table of a node has
	// an entry that is not a configuration of its parents
	ErrInvalidTable = Error("invalid probability table")
	// ErrInvalidProbability is returned for table entries outside [0, 1]
	ErrInvalidProbability = Error("invalid probability")
)

func (e Error) Error() string {
	return string(e)
}
