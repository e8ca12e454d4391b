// Package tui renders the WeSplit screen in a terminal.
package tui

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/mmynk/wesplit/internal/currency"
	"github.com/mmynk/wesplit/internal/models"
	"github.com/mmynk/wesplit/internal/screen"
)

// Controller turns widget events into screen state transitions. It holds no
// widgets so it can be driven directly in tests.
type Controller struct {
	state     *screen.State
	formatter *currency.Formatter
}

// NewController starts a screen with default inputs.
func NewController(formatter *currency.Formatter) *Controller {
	return &Controller{state: screen.New(), formatter: formatter}
}

// State exposes the underlying screen for read-outs.
func (c *Controller) State() *screen.State {
	return c.state
}

// AmountChanged is called on every edit of the amount field. Text that does
// not parse leaves the previous amount in place.
func (c *Controller) AmountChanged(text string) error {
	v, err := currency.ParseInput(text)
	if err != nil {
		return err
	}
	return c.state.SetCheckAmount(v)
}

// FocusAmount marks the field as edited and returns the plain text to edit.
func (c *Controller) FocusAmount() string {
	c.state.FocusAmount()
	if c.state.CheckAmount() == 0 {
		return ""
	}
	return strconv.FormatFloat(c.state.CheckAmount(), 'f', -1, 64)
}

// Done clears focus and returns the amount as currency text for display.
func (c *Controller) Done() string {
	c.state.ClearFocus()
	return c.formatter.Format(c.state.CheckAmount())
}

// SelectPeople applies a party-size picker index (index == offset).
func (c *Controller) SelectPeople(index int) error {
	return c.state.SetNumberOfPeople(index)
}

// SelectTip applies a tip picker index into models.TipPercentages.
func (c *Controller) SelectTip(index int) error {
	if index < 0 || index >= len(models.TipPercentages) {
		return fmt.Errorf("%w: picker index %d", screen.ErrUnsupportedTip, index)
	}
	return c.state.SetTipPercentage(models.TipPercentages[index])
}

// TipIndex is the picker index of the current tip.
func (c *Controller) TipIndex() int {
	for i, p := range models.TipPercentages {
		if p == c.state.TipPercentage() {
			return i
		}
	}
	return 0
}

// ShowDone reports whether the Done action should be on screen.
func (c *Controller) ShowDone() bool {
	return c.state.ShowDone()
}

// ResultText is the amount per person as currency text.
func (c *Controller) ResultText() string {
	total := c.state.TotalPerPerson()
	slog.Debug("Recomputed split",
		"check_amount", c.state.CheckAmount(),
		"people", c.state.PeopleCount(),
		"tip", c.state.TipPercentage(),
		"total_per_person", total,
	)
	return c.formatter.Format(total)
}
