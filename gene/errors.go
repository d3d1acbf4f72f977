package gene

import "errors"

var (
	// ErrTooManyGenes is returned when a scan finds more genes than the
	// map can hold.
	ErrTooManyGenes = errors.New("too many genes")

	// ErrNilMap is returned when no map is passed to Detect.
	ErrNilMap = errors.New("gene map is nil")
)
