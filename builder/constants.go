// constants.go - shared method tags, IDs and minima.

package builder

// Method names prefix constructor errors for context.
const (
	MethodPath         = "Path"
	MethodCycle        = "Cycle"
	MethodStar         = "Star"
	MethodRandomSparse = "RandomSparse"
	MethodEdges        = "Edges"
	MethodVertex       = "Vertex"
	MethodRomania      = "Romania"
)

// CenterVertexID is the hub of Star.
const CenterVertexID = "Center"

// Minimum sizes.
const (
	MinPathNodes         = 2
	MinCycleNodes        = 3
	MinStarLeaves        = 1
	MinRandomSparseNodes = 1
)
