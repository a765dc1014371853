package pentago

import "github.com/rocketscienceinc/pentago/internal/entity"

const lineLength = 5

type cellPos [2]int

// WinLines holds every length-5 window of the 6x6 grid: two per row, two per column
// and four in each diagonal direction.
var WinLines = buildWinLines()

func buildWinLines() [][lineLength]cellPos {
	lines := make([][lineLength]cellPos, 0, 32)
	starts := entity.GridSize - lineLength + 1

	for i := 0; i < entity.GridSize; i++ {
		for s := 0; s < starts; s++ {
			var row, col [lineLength]cellPos
			for k := 0; k < lineLength; k++ {
				row[k] = cellPos{i, s + k}
				col[k] = cellPos{s + k, i}
			}
			lines = append(lines, row, col)
		}
	}

	for dr := 0; dr < starts; dr++ {
		for dc := 0; dc < starts; dc++ {
			var diag, anti [lineLength]cellPos
			for k := 0; k < lineLength; k++ {
				diag[k] = cellPos{dr + k, dc + k}
				anti[k] = cellPos{dr + k, entity.GridSize - 1 - dc - k}
			}
			lines = append(lines, diag, anti)
		}
	}

	return lines
}

// Detection is the raw result of a board scan.
type Detection struct {
	CrossLine bool
	ZeroLine  bool
	Full      bool
}

// Detect - scans the merged view for five equal non-empty signs in a line and for a full board.
// When both signs hold a line the flags are cleared and the board is reported as a draw.
func Detect(view entity.Grid) Detection {
	var detection Detection

	for _, line := range WinLines {
		if detection.CrossLine && detection.ZeroLine {
			break
		}

		switch lineOwner(view, line) {
		case entity.SignCross:
			detection.CrossLine = true
		case entity.SignZero:
			detection.ZeroLine = true
		case entity.SignEmpty:
		}
	}

	detection.Full = view.Count(entity.SignEmpty) == 0

	if detection.CrossLine && detection.ZeroLine {
		detection.CrossLine, detection.ZeroLine = false, false
		detection.Full = true
	}

	return detection
}

// Outcome maps the scan to the game outcome. A line beats a full board.
func (that Detection) Outcome() entity.Outcome {
	switch {
	case that.CrossLine:
		return entity.OutcomeCrossWins
	case that.ZeroLine:
		return entity.OutcomeZeroWins
	case that.Full:
		return entity.OutcomeDraw
	default:
		return entity.OutcomeInProgress
	}
}

func lineOwner(view entity.Grid, line [lineLength]cellPos) entity.Sign {
	first := view[line[0][0]][line[0][1]]
	if first.IsEmpty() {
		return entity.SignEmpty
	}

	for _, pos := range line[1:] {
		if view[pos[0]][pos[1]] != first {
			return entity.SignEmpty
		}
	}

	return first
}
