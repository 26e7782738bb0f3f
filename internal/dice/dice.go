package dice

import (
	"math/rand"

	dnderr "github.com/KirkDiggler/dnd-session-tracker/internal/errors"
)

// RollResult holds the outcome of rolling one or more dice of the same size
type RollResult struct {
	Total   int // sum of all rolls plus the bonus
	Rolls   []int
	Bonus   int
	Highest int
	Lowest  int
}

// Roll rolls count dice with the given number of sides and adds bonus to the total
func Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, dnderr.InvalidArgumentf("invalid dice count %d", count)
	}

	if sides < 1 {
		return nil, dnderr.InvalidArgumentf("invalid dice size %d", sides)
	}

	highest, lowest, total := 0, 0, 0

	out := make([]int, count)
	for i := 0; i < count; i++ {
		roll := rand.Intn(sides) + 1
		total += roll
		if i == 0 {
			lowest = roll
			highest = roll
		}

		if lowest > roll {
			lowest = roll
		}

		if highest < roll {
			highest = roll
		}

		out[i] = roll
	}

	return &RollResult{
		Total:   total + bonus,
		Rolls:   out,
		Bonus:   bonus,
		Highest: highest,
		Lowest:  lowest,
	}, nil
}
