package tui

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/mmynk/wesplit/internal/currency"
	"github.com/mmynk/wesplit/internal/models"
)

const (
	appTitle     = "WeSplit"
	tipSection   = "How much do you want to tip?"
	doneLabel    = "Done"
	doneWidth    = len(doneLabel) + 4
	resultHeight = 3

	// peopleItem is the form index of the party-size picker.
	peopleItem = 1
)

// View holds the widgets of the screen.
type View struct {
	App     *tview.Application
	Root    *tview.Flex
	Toolbar *tview.Flex
	Form    *tview.Form
	Amount  *tview.InputField
	People  *tview.DropDown
	Tip     *tview.DropDown
	Result  *tview.TextView
	DoneBtn *tview.Button

	ctrl *Controller

	// syncing suppresses AmountChanged while the field text is replaced
	// programmatically.
	syncing bool
}

// NewView builds the screen and binds it to a fresh Controller.
func NewView(formatter *currency.Formatter) *View {
	v := &View{
		App:  tview.NewApplication(),
		ctrl: NewController(formatter),
	}

	v.Amount = tview.NewInputField().
		SetLabel("Amount ").
		SetFieldWidth(16).
		SetAcceptanceFunc(currency.AcceptAmountRune).
		SetChangedFunc(v.onAmountChanged)
	v.setAmountText(formatter.Format(0))
	v.Amount.SetFocusFunc(v.onAmountFocus)
	v.Amount.SetBlurFunc(v.onAmountBlur)

	v.People = tview.NewDropDown().
		SetLabel("Number of People ").
		SetOptions(models.PeopleOptions(), func(_ string, index int) {
			if err := v.ctrl.SelectPeople(index); err != nil {
				slog.Warn("Rejected party size", "index", index, "error", err)
			}
			v.refresh()
		})

	tipLabels := make([]string, len(models.TipPercentages))
	for i, p := range models.TipPercentages {
		tipLabels[i] = models.TipLabel(p)
	}
	v.Tip = tview.NewDropDown().
		SetLabel(tipSection+" ").
		SetOptions(tipLabels, func(_ string, index int) {
			if err := v.ctrl.SelectTip(index); err != nil {
				slog.Warn("Rejected tip", "index", index, "error", err)
			}
			v.refresh()
		})

	v.Form = tview.NewForm().
		AddFormItem(v.Amount).
		AddFormItem(v.People).
		AddFormItem(v.Tip)
	v.Form.SetBorder(true).SetTitle(" " + appTitle + " ").SetTitleAlign(tview.AlignLeft)
	// The screen opens with the amount field unfocused.
	v.Form.SetFocus(peopleItem)

	v.Result = tview.NewTextView().SetTextAlign(tview.AlignLeft)
	v.Result.SetBorder(true).SetTitle(" Total per person ")

	v.DoneBtn = tview.NewButton(doneLabel).SetSelectedFunc(v.done)
	v.Toolbar = tview.NewFlex().SetDirection(tview.FlexColumn)

	v.Root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.Toolbar, 1, 0, false).
		AddItem(v.Form, 0, 1, true).
		AddItem(v.Result, resultHeight, 0, false)

	v.People.SetCurrentOption(v.ctrl.State().NumberOfPeople())
	v.Tip.SetCurrentOption(v.ctrl.TipIndex())

	v.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlD && v.ctrl.ShowDone() {
			v.done()
			return nil
		}
		return event
	})
	v.App.SetRoot(v.Root, true).EnableMouse(true)
	v.refresh()
	return v
}

// Run blocks until the user quits with Ctrl-C.
func (v *View) Run() error {
	return v.App.Run()
}

func (v *View) onAmountChanged(text string) {
	if v.syncing {
		return
	}
	if err := v.ctrl.AmountChanged(text); err != nil {
		slog.Debug("Ignoring amount text", "text", text, "error", err)
	}
	v.refresh()
}

// onAmountFocus and onAmountBlur run while the application holds its lock,
// so they only touch widgets, never the Application.
func (v *View) onAmountFocus() {
	v.setAmountText(v.ctrl.FocusAmount())
	v.refresh()
}

func (v *View) onAmountBlur() {
	v.setAmountText(v.ctrl.Done())
	v.refresh()
}

// done is the toolbar action: moving focus off the field triggers onAmountBlur.
func (v *View) done() {
	v.App.SetFocus(v.People)
}

func (v *View) setAmountText(text string) {
	v.syncing = true
	v.Amount.SetText(text)
	v.syncing = false
}

// refresh redraws everything derived from state.
func (v *View) refresh() {
	v.Result.SetText(v.ctrl.ResultText())

	v.Toolbar.Clear()
	v.Toolbar.AddItem(tview.NewBox(), 0, 1, false)
	if v.ctrl.ShowDone() {
		v.Toolbar.AddItem(v.DoneBtn, doneWidth, 0, false)
	}
}
