package entity

// MatchStatus is the phase a match is in.
type MatchStatus string

const (
	StatusInProgress MatchStatus = "in_progress"
	StatusWon        MatchStatus = "won"
	StatusDraw       MatchStatus = "draw"
)

// MatchResult is the outcome of a finished match. Winner is meaningful only
// when Status is StatusWon.
type MatchResult struct {
	Status MatchStatus
	Winner Mark
	Moves  int
}
