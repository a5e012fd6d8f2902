package clip

import (
	"fmt"
	"strings"
)

// Algorithm selects one of the rectangle line clippers.
//
// All three produce the same accept/reject decision for any segment and
// valid window; accepted endpoints agree exactly between CohenSutherland
// and LiangBarsky up to rounding, and within MidpointTolerance for Midpoint.
type Algorithm int

const (
	// AlgorithmCohenSutherland iteratively moves outside endpoints onto the
	// window edge indicated by their outcode (default).
	AlgorithmCohenSutherland Algorithm = iota

	// AlgorithmLiangBarsky narrows the parametric interval [0, 1] against
	// the four edge constraints.
	AlgorithmLiangBarsky

	// AlgorithmMidpoint bisects until pieces are trivially accepted or
	// rejected. Approximate, see MidpointTolerance.
	AlgorithmMidpoint
)

// Algorithms returns every rectangle clipping algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmCohenSutherland, AlgorithmLiangBarsky, AlgorithmMidpoint}
}

// String returns the algorithm name as accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmCohenSutherland:
		return "cohen-sutherland"
	case AlgorithmLiangBarsky:
		return "liang-barsky"
	case AlgorithmMidpoint:
		return "midpoint"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Valid reports whether a names a known algorithm.
func (a Algorithm) Valid() bool {
	return a >= AlgorithmCohenSutherland && a <= AlgorithmMidpoint
}

// ParseAlgorithm converts a name such as "liang-barsky" to an Algorithm.
// Matching ignores case, and underscores may stand in for dashes.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, a := range Algorithms() {
		if a.String() == key {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// ClipSegment clips s to w with the selected algorithm.
//
// It returns ErrInvalidWindow for an invalid window and ErrUnknownAlgorithm
// for an unknown alg. A segment outside the window yields (Segment{}, false, nil).
func ClipSegment(s Segment, w Window, alg Algorithm) (Segment, bool, error) {
	fn, err := alg.clipper()
	if err != nil {
		return Segment{}, false, err
	}
	if err := w.Validate(); err != nil {
		return Segment{}, false, err
	}
	out, ok := fn(s, w)
	return out, ok, nil
}

// segmentClipper is the unchecked form shared by the three algorithms.
type segmentClipper func(Segment, Window) (Segment, bool)

func (a Algorithm) clipper() (segmentClipper, error) {
	switch a {
	case AlgorithmCohenSutherland:
		return cohenSutherland, nil
	case AlgorithmLiangBarsky:
		return liangBarsky, nil
	case AlgorithmMidpoint:
		return midpoint, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
	}
}
