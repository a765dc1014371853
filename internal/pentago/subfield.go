package pentago

import (
	"fmt"

	"github.com/rocketscienceinc/pentago/internal/apperror"
	"github.com/rocketscienceinc/pentago/internal/entity"
)

const subFieldSize = 3

// SubField is one rotatable 3x3 quadrant of the board.
type SubField struct {
	index int
	cells [subFieldSize][subFieldSize]entity.Sign
}

func newSubField(index int) *SubField {
	return &SubField{index: index}
}

func (that *SubField) Index() int {
	return that.index
}

// Place - puts sign into the empty cell at (row, col).
func (that *SubField) Place(row, col int, sign entity.Sign) error {
	if err := that.validatePlacement(row, col, sign); err != nil {
		return err
	}

	that.cells[row][col] = sign

	return nil
}

func (that *SubField) validatePlacement(row, col int, sign entity.Sign) error {
	if !inSubField(row) || !inSubField(col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, row, col)
	}

	if sign.IsEmpty() {
		return fmt.Errorf("%w: empty sign", apperror.ErrInvalidCell)
	}

	if !that.cells[row][col].IsEmpty() {
		return apperror.ErrCellOccupied
	}

	return nil
}

// Rotate - turns the quadrant by 90 degrees. Only positions change, never the contents.
func (that *SubField) Rotate(clockwise bool) {
	var rotated [subFieldSize][subFieldSize]entity.Sign

	for r := 0; r < subFieldSize; r++ {
		for c := 0; c < subFieldSize; c++ {
			if clockwise {
				rotated[r][c] = that.cells[2-c][r]
			} else {
				rotated[r][c] = that.cells[c][2-r]
			}
		}
	}

	that.cells = rotated
}

// IsEmpty reports whether all nine cells are empty.
func (that *SubField) IsEmpty() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if !cell.IsEmpty() {
				return false
			}
		}
	}

	return true
}

// HasFreeCell reports whether at least one cell is empty.
func (that *SubField) HasFreeCell() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell.IsEmpty() {
				return true
			}
		}
	}

	return false
}

// Rows returns a copy of the cells.
func (that *SubField) Rows() [subFieldSize][subFieldSize]entity.Sign {
	return that.cells
}

func (that *SubField) reset() {
	that.cells = [subFieldSize][subFieldSize]entity.Sign{}
}

func inSubField(i int) bool {
	return i >= 0 && i < subFieldSize
}
