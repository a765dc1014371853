package entity

// Score holds the tallies of finished games.
type Score struct {
	Cross int64 `json:"cross"`
	Zero  int64 `json:"zero"`
	Draw  int64 `json:"draw"`
}

// Add counts one finished game. In-progress outcomes are ignored.
func (that *Score) Add(outcome Outcome) {
	switch outcome {
	case OutcomeCrossWins:
		that.Cross++
	case OutcomeZeroWins:
		that.Zero++
	case OutcomeDraw:
		that.Draw++
	case OutcomeInProgress:
	}
}

// Total returns the number of counted games.
func (that *Score) Total() int64 {
	return that.Cross + that.Zero + that.Draw
}
