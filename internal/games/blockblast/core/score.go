package core

// ScorePolicy turns a placement result into points. The exact formula is
// owned by the progression collaborator; the engine only reports raw
// counts and applies whatever policy the session was built with.
type ScorePolicy interface {
	Score(result PlacementResult, boardSize int) int
}

// DefaultScorePolicy awards one point per placed cell plus a quadratic
// line bonus, so double clears pay more than two singles.
type DefaultScorePolicy struct{}

// Score implements ScorePolicy.
func (DefaultScorePolicy) Score(result PlacementResult, boardSize int) int {
	lines := result.Lines()
	return result.CellsPlaced + boardSize*lines*lines
}
