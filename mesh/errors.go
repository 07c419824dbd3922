package mesh

import (
	"errors"
	"fmt"
)

// Reasons carried by the error categories below, matched with errors.Is
var (
	// StructuralInputError reasons
	ErrBadDimension       = errors.New("unsupported mesh dimension")
	ErrUnsupportedKind    = errors.New("unsupported element kind")
	ErrDuplicateNode      = errors.New("duplicate node id")
	ErrBadCoordinate      = errors.New("non-finite node coordinate")
	ErrDuplicateElement   = errors.New("duplicate element id")
	ErrUnknownNode        = errors.New("unknown node id")
	ErrNodeCount          = errors.New("wrong number of element nodes")
	ErrFaceSize           = errors.New("face has too many nodes")
	ErrNonManifoldFace    = errors.New("non-manifold face")
	ErrMissingBoundaryTag = errors.New("boundary face without marker element")
	ErrTaggedInteriorFace = errors.New("interior face carries a boundary marker")
	ErrConflictingMarkers = errors.New("conflicting boundary markers")

	// ClassificationError reasons
	ErrUnmatchedTag        = errors.New("boundary tag matches no surface descriptor")
	ErrInteriorDescriptor  = errors.New("exactly one interior descriptor is required")
	ErrDuplicateDescriptor = errors.New("duplicate surface descriptor")
	ErrBadDescriptor       = errors.New("invalid surface descriptor")

	// PeriodicPairingError reasons
	ErrMissingPeriodicPartner = errors.New("node has no periodic partner")
	ErrUnmatchedMaster        = errors.New("periodic face has no shadow")
	ErrUnmatchedShadow        = errors.New("shadow face has no periodic master")
	ErrAmbiguousShadow        = errors.New("shadow face claimed twice")
	ErrMixedShadowZones       = errors.New("periodic zone pairs with several shadow zones")
)

// StructuralInputError reports malformed or incomplete records, unsupported element
// kinds or dimensions, and non-manifold topology.
type StructuralInputError struct {
	Reason error
	Detail string
}

func (e *StructuralInputError) Error() string {
	return fmt.Sprintf("structural input error: %v: %s", e.Reason, e.Detail)
}

func (e *StructuralInputError) Unwrap() error { return e.Reason }

// ClassificationError reports boundary faces or descriptor tables that cannot be
// mapped onto surface zones.
type ClassificationError struct {
	Reason error
	Detail string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classification error: %v: %s", e.Reason, e.Detail)
}

func (e *ClassificationError) Unwrap() error { return e.Reason }

// PeriodicPairingError reports periodic faces that cannot be matched to shadows.
type PeriodicPairingError struct {
	Reason error
	Detail string
}

func (e *PeriodicPairingError) Error() string {
	return fmt.Sprintf("periodic pairing error: %v: %s", e.Reason, e.Detail)
}

func (e *PeriodicPairingError) Unwrap() error { return e.Reason }

func structuralf(reason error, format string, args ...interface{}) error {
	return &StructuralInputError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

func classificationf(reason error, format string, args ...interface{}) error {
	return &ClassificationError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

func periodicf(reason error, format string, args ...interface{}) error {
	return &PeriodicPairingError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}
