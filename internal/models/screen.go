package models

import "fmt"

const (
	// MinPeople is the smallest party the picker offers.
	MinPeople = 2
	// MaxPeople is the largest party the picker offers.
	MaxPeople = 98
	// MaxPeopleOffset is the largest valid stored party-size offset.
	MaxPeopleOffset = MaxPeople - MinPeople

	// MaxCheckAmount is the largest check amount accepted. Below it a float64
	// still holds every cent exactly.
	MaxCheckAmount = 1e15

	// DefaultNumberOfPeople is the initial offset (two people).
	DefaultNumberOfPeople = 0
	// DefaultTipPercentage is the initially selected tip.
	DefaultTipPercentage = 20
)

// TipPercentages lists the selectable tips in display order.
var TipPercentages = []int{10, 20, 25, 0}

// IsValidTip reports whether p is one of TipPercentages.
func IsValidTip(p int) bool {
	for _, t := range TipPercentages {
		if t == p {
			return true
		}
	}
	return false
}

// IsValidPeopleOffset reports whether offset is inside the picker range.
func IsValidPeopleOffset(offset int) bool {
	return offset >= 0 && offset <= MaxPeopleOffset
}

// PeopleLabel renders a party-size offset the way the picker shows it.
func PeopleLabel(offset int) string {
	return fmt.Sprintf("%d people", offset+MinPeople)
}

// PeopleOptions returns the picker labels; index i is offset i.
func PeopleOptions() []string {
	opts := make([]string, 0, MaxPeopleOffset+1)
	for i := 0; i <= MaxPeopleOffset; i++ {
		opts = append(opts, PeopleLabel(i))
	}
	return opts
}

// TipLabel renders a tip percentage as the segmented picker shows it.
func TipLabel(p int) string {
	return fmt.Sprintf("%d%%", p)
}

// Snapshot is a read-out of one screen.
type Snapshot struct {
	// ScreenID identifies the screen instance; empty for local screens.
	ScreenID string

	// CheckAmount is the entered amount before tip.
	CheckAmount float64

	// NumberOfPeople is the stored party-size offset.
	NumberOfPeople int

	// PeopleCount is NumberOfPeople plus the offset, the actual divisor.
	PeopleCount int

	// TipPercentage is the selected tip.
	TipPercentage int

	// TotalPerPerson is recomputed from the fields above.
	TotalPerPerson float64

	// AmountFocused is true while the amount field is being edited.
	AmountFocused bool

	// ShowDone is true when the keyboard-dismiss action should be offered.
	ShowDone bool
}
