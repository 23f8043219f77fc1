package astro

import (
	"errors"
	"fmt"
)

// Errors for coordinate transforms. The typed errors below match these with errors.Is.
var (
	ErrDomain             = errors.New("inverse trig argument outside [-1, 1]")
	ErrDegenerateGeometry = errors.New("azimuth undefined for this geometry")
)

// DomainError reports an inverse trig input outside [-1, 1].
type DomainError struct {
	Op    string  // "asin" or "acos"
	Value float64 // offending argument
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s(%g): %v", e.Op, e.Value, ErrDomain)
}

// Is reports whether target is ErrDomain.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// DegenerateReason says why azimuth could not be computed.
type DegenerateReason int

const (
	ReasonPole   DegenerateReason = iota // observer at a geographic pole
	ReasonZenith                         // object exactly overhead
	ReasonNadir                          // object exactly underfoot
)

func (r DegenerateReason) String() string {
	switch r {
	case ReasonPole:
		return "observer at pole"
	case ReasonZenith:
		return "object at zenith"
	case ReasonNadir:
		return "object at nadir"
	default:
		return "unknown"
	}
}

// DegenerateGeometryError is returned when azimuth is mathematically undefined.
// AltDeg is still valid and may be displayed by the caller.
type DegenerateGeometryError struct {
	Reason DegenerateReason
	AltDeg float64
	LatDeg float64
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("%v: %s (alt=%.6f lat=%.6f)", ErrDegenerateGeometry, e.Reason, e.AltDeg, e.LatDeg)
}

// Is reports whether target is ErrDegenerateGeometry.
func (e *DegenerateGeometryError) Is(target error) bool {
	return target == ErrDegenerateGeometry
}

// isDegenerate reports whether err only says azimuth is undefined.
func isDegenerate(err error) bool {
	return errors.Is(err, ErrDegenerateGeometry)
}
