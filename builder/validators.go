package builder

// validateBounds enforces minStates > MinStatesExclusive and
// minStates < maxStates. Returns ErrConstruction wrapped with context.
// Complexity: O(1).
func validateBounds(minStates, maxStates int) error {
	if minStates <= MinStatesExclusive {
		return builderErrorf(methodBuild, ErrConstruction,
			"minStates must be > %d, got %d", MinStatesExclusive, minStates)
	}
	if minStates >= maxStates {
		return builderErrorf(methodBuild, ErrConstruction,
			"minStates must be < maxStates, got %d >= %d", minStates, maxStates)
	}

	return nil
}
