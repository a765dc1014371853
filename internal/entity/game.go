package entity

import (
	"errors"
	"fmt"
)

// Sign is the value of a single board cell.
type Sign uint8

const (
	SignEmpty Sign = iota
	SignCross
	SignZero
)

const (
	markEmpty = ""
	markCross = "X"
	markZero  = "O"
)

var ErrUnknownSign = errors.New("unknown sign")

// Opponent returns the sign that moves after that one.
func (that Sign) Opponent() Sign {
	switch that {
	case SignCross:
		return SignZero
	case SignZero:
		return SignCross
	default:
		return SignEmpty
	}
}

func (that Sign) IsEmpty() bool {
	return that == SignEmpty
}

func (that Sign) String() string {
	switch that {
	case SignEmpty:
		return markEmpty
	case SignCross:
		return markCross
	case SignZero:
		return markZero
	default:
		panic(fmt.Sprintf("entity: invalid sign %d", uint8(that)))
	}
}

func (that Sign) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Sign) UnmarshalText(text []byte) error {
	sign, err := ParseSign(string(text))
	if err != nil {
		return err
	}

	*that = sign

	return nil
}

// ParseSign - converts a mark ("X", "O" or "") into a Sign.
func ParseSign(mark string) (Sign, error) {
	switch mark {
	case markEmpty:
		return SignEmpty, nil
	case markCross, "x":
		return SignCross, nil
	case markZero, "o", "0":
		return SignZero, nil
	default:
		return SignEmpty, fmt.Errorf("%w: %q", ErrUnknownSign, mark)
	}
}

// GridSize is the side of the merged board.
const GridSize = 6

// Grid is the merged 6x6 view of the board, indexed [row][col].
type Grid [GridSize][GridSize]Sign

// Count returns how many cells hold sign.
func (that *Grid) Count(sign Sign) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == sign {
				count++
			}
		}
	}

	return count
}
