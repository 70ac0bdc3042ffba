package chart

import "github.com/matzehuels/cartesian/pkg/errors"

// Orientation is the side of the plot area an axis is drawn on.
type Orientation string

const (
	OrientTop    Orientation = "top"
	OrientBottom Orientation = "bottom"
	OrientLeft   Orientation = "left"
	OrientRight  Orientation = "right"
	// OrientNone omits the axis and its region.
	OrientNone Orientation = "none"
)

// validFor reports whether o can be used on the given dimension: top and
// bottom for x, left and right for y, none for either.
func (o Orientation) validFor(dim string) bool {
	switch o {
	case OrientNone:
		return true
	case OrientTop, OrientBottom:
		return dim == "x"
	case OrientLeft, OrientRight:
		return dim == "y"
	}
	return false
}

// resolveOrient evaluates an orientation accessor for datum and rejects
// values that have no axis on that dimension.
func resolveOrient(dim string, fn Func[Orientation], datum any) (Orientation, error) {
	o := fn(datum)
	if !o.validFor(dim) {
		return "", errors.New(errors.ErrCodeInvalidOrientation, "%s axis cannot be oriented %q", dim, o)
	}
	return o, nil
}
