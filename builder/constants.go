package builder

// Canonical constructor names used to prefix errors.
const (
	methodComplete     = "Complete"
	methodCycle        = "Cycle"
	methodPath         = "Path"
	methodGrid         = "Grid"
	methodStar         = "Star"
	methodRandomSparse = "RandomSparse"
	methodTopology     = "Topology"
)

// CenterVertexID is the identifier for the hub vertex of Star.
const CenterVertexID = "Center"

// Minimum sizes per constructor.
const (
	minCompleteNodes = 1
	minCycleNodes    = 3
	minPathNodes     = 1
	minStarNodes     = 2
	minGridDim       = 1
	minRandomNodes   = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
