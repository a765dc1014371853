package pentago

import (
	"fmt"

	"github.com/rocketscienceinc/pentago/internal/apperror"
	"github.com/rocketscienceinc/pentago/internal/entity"
)

// SubFieldCount is the number of quadrants. They are indexed
// 0 top-left, 1 top-right, 2 bottom-left, 3 bottom-right.
const SubFieldCount = 4

// Board is four quadrants in a fixed 2x2 layout.
type Board struct {
	subFields [SubFieldCount]*SubField
}

func NewBoard() *Board {
	board := &Board{}
	for i := range board.subFields {
		board.subFields[i] = newSubField(i)
	}

	return board
}

// SubField returns the quadrant at index.
func (that *Board) SubField(index int) (*SubField, error) {
	if index < 0 || index >= SubFieldCount {
		return nil, fmt.Errorf("%w: %d", apperror.ErrSubFieldIndexOutOfRange, index)
	}

	return that.subFields[index], nil
}

// ApplyPlacement - places sign into a quadrant. The board is untouched on error.
func (that *Board) ApplyPlacement(index, row, col int, sign entity.Sign) error {
	subField, err := that.SubField(index)
	if err != nil {
		return err
	}

	if err = subField.Place(row, col, sign); err != nil {
		return fmt.Errorf("subfield %d: %w", index, err)
	}

	return nil
}

// ApplyRotation - rotates a quadrant.
func (that *Board) ApplyRotation(index int, clockwise bool) error {
	subField, err := that.SubField(index)
	if err != nil {
		return err
	}

	subField.Rotate(clockwise)

	return nil
}

// MergedView builds the 6x6 grid from the quadrants: the top band is quadrant 0 next to
// quadrant 1, the bottom band is quadrant 2 next to quadrant 3.
func (that *Board) MergedView() entity.Grid {
	var view entity.Grid

	for index, subField := range that.subFields {
		rowOffset := (index / 2) * subFieldSize
		colOffset := (index % 2) * subFieldSize

		for r, row := range subField.cells {
			for c, cell := range row {
				view[rowOffset+r][colOffset+c] = cell
			}
		}
	}

	return view
}

// IsFull reports whether all 36 cells are occupied.
func (that *Board) IsFull() bool {
	for _, subField := range that.subFields {
		if subField.HasFreeCell() {
			return false
		}
	}

	return true
}

// IsAnySubFieldEmpty reports whether some quadrant has no marks at all.
func (that *Board) IsAnySubFieldEmpty() bool {
	for _, subField := range that.subFields {
		if subField.IsEmpty() {
			return true
		}
	}

	return false
}

func (that *Board) reset() {
	for _, subField := range that.subFields {
		subField.reset()
	}
}
