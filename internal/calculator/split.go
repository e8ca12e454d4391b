package calculator

import (
	"errors"
	"fmt"
	"math"
)

// PeopleOffset is added to the stored party-size value to get the number of
// people the bill is divided between. A stored value of 0 means two people.
const PeopleOffset = 2

var (
	// ErrInvalidDivisor is returned when the party size resolves to fewer than one person.
	ErrInvalidDivisor = errors.New("invalid divisor: party size must be at least one person")
	// ErrNonFiniteResult is returned when the amount is too large to split.
	ErrNonFiniteResult = errors.New("check amount too large: total is not a finite number")
)

// Breakdown holds every intermediate value of a split.
type Breakdown struct {
	PeopleCount    int
	TipValue       float64
	GrandTotal     float64
	TotalPerPerson float64
}

// CalculateSplit divides a check plus tip evenly across the party.
// numberOfPeople is the stored offset, not the head count.
// Based on the algorithm: per_person = (amount + amount / 100 × tip) / (offset + 2)
//
// No rounding is applied; formatting to currency precision is left to the caller.
func CalculateSplit(checkAmount float64, numberOfPeople int, tipPercentage int) (*Breakdown, error) {
	peopleCount := numberOfPeople + PeopleOffset
	if peopleCount < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDivisor, peopleCount)
	}

	tipValue := checkAmount / 100 * float64(tipPercentage)
	grandTotal := checkAmount + tipValue
	if math.IsInf(grandTotal, 0) || math.IsNaN(grandTotal) {
		return nil, fmt.Errorf("%w: amount %v, tip %d%%", ErrNonFiniteResult, checkAmount, tipPercentage)
	}

	return &Breakdown{
		PeopleCount:    peopleCount,
		TipValue:       tipValue,
		GrandTotal:     grandTotal,
		TotalPerPerson: grandTotal / float64(peopleCount),
	}, nil
}

// TotalPerPerson is CalculateSplit reduced to the amount each person pays.
func TotalPerPerson(checkAmount float64, numberOfPeople int, tipPercentage int) (float64, error) {
	b, err := CalculateSplit(checkAmount, numberOfPeople, tipPercentage)
	if err != nil {
		return 0, err
	}
	return b.TotalPerPerson, nil
}
