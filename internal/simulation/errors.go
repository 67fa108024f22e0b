package simulation

import "fmt"

// InvalidBodyError reports a body constructed with physically meaningless
// parameters, such as a non-positive mass.
type InvalidBodyError struct {
	Name   string
	Reason string
}

func (e *InvalidBodyError) Error() string {
	return fmt.Sprintf("invalid body %q: %s", e.Name, e.Reason)
}

// DegenerateConfigurationError reports two bodies closer than the minimum
// separation, where the gravitational force is undefined or blows up.
type DegenerateConfigurationError struct {
	BodyA    string
	BodyB    string
	Distance float64
}

func (e *DegenerateConfigurationError) Error() string {
	return fmt.Sprintf("degenerate configuration: bodies %q and %q separated by %g m (minimum %g m)",
		e.BodyA, e.BodyB, e.Distance, minSeparation)
}
