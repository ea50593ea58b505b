package pegrt

import (
	"fmt"
	"sort"
)

// Position is a byte offset counting from zero, plus line and column numbers
// counting from one.
type Position struct {
	Offset int
	Line   int
	Column int
}

// startPosition is the position of the first byte of any input.
var startPosition = Position{Offset: 0, Line: 1, Column: 1}

func (pos Position) String() string {
	return fmt.Sprintf("%d:%d+%d", pos.Line, pos.Column, pos.Offset)
}

// advance moves pos over the bytes consumed, input[pos.Offset:pos.Offset+n].
// A line ends after "\n", after "\r" not followed by "\n", or after "\r\n".
func (pos Position) advance(input []byte, n int) Position {
	end := pos.Offset + n
	for i := pos.Offset; i < end; i++ {
		switch input[i] {
		case '\n':
			pos.Line++
			pos.Column = 1
		case '\r':
			if i+1 < len(input) && input[i+1] == '\n' {
				pos.Column++
			} else {
				pos.Line++
				pos.Column = 1
			}
		default:
			pos.Column++
		}
	}
	pos.Offset = end
	return pos
}

// Simple byte-level line column calculator.
type positionCalculator struct {
	input  []byte
	cached int   // cached to where
	lnends []int // offsets just after found "\r"|"\n"|"\r\n" line endings
}

func (calc *positionCalculator) calculate(offset int) Position {
	if offset > len(calc.input) {
		offset = len(calc.input)
	}
	ln, lnstart := calc.search(offset)
	return Position{
		Offset: offset,
		Line:   ln + 1,
		Column: offset - lnstart + 1,
	}
}

func (calc *positionCalculator) search(offset int) (ln, lnstart int) {
	calc.caching(offset)
	// number of line ends at or before offset
	i := sort.Search(len(calc.lnends), func(i int) bool {
		return calc.lnends[i] > offset
	})
	if i == 0 {
		return 0, 0
	}
	return i, calc.lnends[i-1]
}

func (calc *positionCalculator) caching(to int) {
	for ; calc.cached < to; calc.cached++ {
		switch calc.input[calc.cached] {
		case '\n':
			calc.lnends = append(calc.lnends, calc.cached+1)
		case '\r':
			if calc.cached+1 >= len(calc.input) || calc.input[calc.cached+1] != '\n' {
				calc.lnends = append(calc.lnends, calc.cached+1)
			}
		}
	}
}
