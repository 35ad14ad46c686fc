package beam

// Release is the end release an element uses in one solve
type Release int

const (
	NoRelease Release = iota
	StartReleased
	EndReleased
)

func (r Release) String() string {
	switch r {
	case StartReleased:
		return "start released"
	case EndReleased:
		return "end released"
	}
	return "none"
}

// Pass selects which side of each internal hinge carries the release.
// A hinge must be attributed to exactly one adjacent element per solve.
type Pass int

const (
	// PassOne releases elements ending at a hinge; hinges at an element's start are ignored
	PassOne Pass = 1
	// PassTwo releases elements starting at a hinge; hinges at an element's end are ignored
	PassTwo Pass = 2
)

// Release derives the element's release for this pass without touching its
// boundaries. When both ends qualify, the start release wins.
func (p Pass) Release(e *Element) Release {
	start := e.StartBoundary.Kind == InternalHinge && p != PassOne
	end := e.EndBoundary.Kind == InternalHinge && p != PassTwo
	switch {
	case start:
		return StartReleased
	case end:
		return EndReleased
	}
	return NoRelease
}
