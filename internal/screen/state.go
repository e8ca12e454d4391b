// Package screen holds the interaction state of one WeSplit screen.
//
// A State is owned by a single control flow and is not safe for concurrent
// use. The amount per person is recomputed on every read.
package screen

import (
	"errors"
	"fmt"
	"math"

	"github.com/mmynk/wesplit/internal/calculator"
	"github.com/mmynk/wesplit/internal/models"
)

var (
	ErrInvalidAmount    = errors.New("check amount must be a finite number")
	ErrNegativeAmount   = errors.New("check amount cannot be negative")
	ErrAmountTooLarge   = fmt.Errorf("check amount cannot exceed %.0f", models.MaxCheckAmount)
	ErrPeopleOutOfRange = fmt.Errorf("number of people offset must be between 0 and %d", models.MaxPeopleOffset)
	ErrUnsupportedTip   = fmt.Errorf("tip percentage must be one of %v", models.TipPercentages)
)

// State is the current input of a screen plus the amount field focus flag.
type State struct {
	checkAmount    float64
	numberOfPeople int
	tipPercentage  int
	amountFocused  bool
}

// New returns a screen with default inputs: amount 0, two people, 20% tip.
func New() *State {
	return &State{
		numberOfPeople: models.DefaultNumberOfPeople,
		tipPercentage:  models.DefaultTipPercentage,
	}
}

// SetCheckAmount replaces the amount. Negative, non-finite and oversized
// values are rejected and leave the state unchanged.
func (s *State) SetCheckAmount(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrInvalidAmount
	}
	if v < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeAmount, v)
	}
	if v > models.MaxCheckAmount {
		return fmt.Errorf("%w: %v", ErrAmountTooLarge, v)
	}
	s.checkAmount = v
	return nil
}

// SetNumberOfPeople replaces the party-size offset (0 means two people).
func (s *State) SetNumberOfPeople(offset int) error {
	if !models.IsValidPeopleOffset(offset) {
		return fmt.Errorf("%w: got %d", ErrPeopleOutOfRange, offset)
	}
	s.numberOfPeople = offset
	return nil
}

// SetTipPercentage replaces the tip.
func (s *State) SetTipPercentage(p int) error {
	if !models.IsValidTip(p) {
		return fmt.Errorf("%w: got %d", ErrUnsupportedTip, p)
	}
	s.tipPercentage = p
	return nil
}

// FocusAmount marks the amount field as being edited.
func (s *State) FocusAmount() {
	s.amountFocused = true
}

// ClearFocus is the "Done" action. It never touches the numeric inputs.
func (s *State) ClearFocus() {
	s.amountFocused = false
}

// CheckAmount is the amount entered for the bill.
func (s *State) CheckAmount() float64 { return s.checkAmount }

// NumberOfPeople is the stored party-size offset, not the head count.
func (s *State) NumberOfPeople() int { return s.numberOfPeople }

// TipPercentage is the selected tip.
func (s *State) TipPercentage() int { return s.tipPercentage }

// AmountFocused reports whether the amount field is being edited.
func (s *State) AmountFocused() bool { return s.amountFocused }

// PeopleCount is the divisor the current offset stands for.
func (s *State) PeopleCount() int {
	return s.numberOfPeople + calculator.PeopleOffset
}

// ShowDone reports whether the keyboard-dismiss action should be offered.
func (s *State) ShowDone() bool {
	return s.amountFocused
}

// Breakdown recomputes the split from the current inputs.
func (s *State) Breakdown() calculator.Breakdown {
	b, err := calculator.CalculateSplit(s.checkAmount, s.numberOfPeople, s.tipPercentage)
	if err != nil {
		// setters keep the offset and amount in range
		panic(fmt.Sprintf("screen: inconsistent state: %v", err))
	}
	return *b
}

// TotalPerPerson recomputes the amount each person pays.
func (s *State) TotalPerPerson() float64 {
	return s.Breakdown().TotalPerPerson
}

// Snapshot reads every field and derived value at once.
func (s *State) Snapshot() models.Snapshot {
	return models.Snapshot{
		CheckAmount:    s.checkAmount,
		NumberOfPeople: s.numberOfPeople,
		PeopleCount:    s.PeopleCount(),
		TipPercentage:  s.tipPercentage,
		TotalPerPerson: s.TotalPerPerson(),
		AmountFocused:  s.amountFocused,
		ShowDone:       s.ShowDone(),
	}
}
