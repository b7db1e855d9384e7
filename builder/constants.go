package builder

// Method name used to prefix errors with context.
const methodBuild = "Build"

// MinStatesExclusive is the lower bound on minStates: Build requires
// minStates > MinStatesExclusive.
const MinStatesExclusive = 10

//-----------------------------------------------------------------------------
// Sizing constants
//-----------------------------------------------------------------------------

const (
	// faultShare divides the state size to obtain the fault-state size.
	faultShare = 10
	// minFaultyStates is the floor of the fault-state size.
	minFaultyStates = 4

	// largeSystem is the state size above which larger alphabets and longer
	// fault-injection walks are used.
	largeSystem = 20

	// Alphabet size = rng.Intn(alphabetSpread) + base.
	alphabetSpread    = 11
	alphabetBaseSmall = 6
	alphabetBaseLarge = 10

	// Fault count bounds.
	minFaults        = 2
	maxFaultsDefault = 4
	richAlphabet     = 15
	wideSegment      = 3
)

//-----------------------------------------------------------------------------
// Walk constants
//-----------------------------------------------------------------------------

const (
	// Each pointer step adds rng.Intn(maxExtraEdges)+1 random edges.
	maxExtraEdges = 3
	// The last visited node gets rng.Intn(maxFinalEdges)+1 edges.
	maxFinalEdges = 2

	// Fault injection walks rng.Intn(bound)+injectMinSteps observable steps.
	injectMinSteps   = 10
	injectBoundSmall = 21
	injectBoundLarge = 31

	// Cross-wiring walks k+rng.Intn(crossSpread) steps in the source segment.
	crossSpread = 6

	// Extra-normal wiring walks rng.Intn(extraFaultWalk) steps in the fault
	// segment and rng.Intn(extraNormalWalk) steps in the extra segment.
	extraFaultWalk  = 5
	extraNormalWalk = 10
)
