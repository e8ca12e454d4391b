// Package api defines the messages exchanged with wesplit.v1.SplitService.
// Messages are encoded as JSON.
package api

// Screen is the read-out of one live screen.
type Screen struct {
	ScreenID           string  `json:"screen_id"`
	CheckAmount        float64 `json:"check_amount"`
	NumberOfPeople     int     `json:"number_of_people"`
	PeopleCount        int     `json:"people_count"`
	TipPercentage      int     `json:"tip_percentage"`
	TotalPerPerson     float64 `json:"total_per_person"`
	TotalPerPersonText string  `json:"total_per_person_text"`
	CurrencyCode       string  `json:"currency_code"`
	AmountFocused      bool    `json:"amount_focused"`
	ShowDone           bool    `json:"show_done"`
}

// CalculateRequest asks for a one-shot split. NumberOfPeople is the
// party-size offset: 0 means two people.
type CalculateRequest struct {
	CheckAmount    float64 `json:"check_amount"`
	NumberOfPeople int     `json:"number_of_people"`
	TipPercentage  int     `json:"tip_percentage"`
}

type CalculateResponse struct {
	PeopleCount        int     `json:"people_count"`
	TipValue           float64 `json:"tip_value"`
	GrandTotal         float64 `json:"grand_total"`
	TotalPerPerson     float64 `json:"total_per_person"`
	TotalPerPersonText string  `json:"total_per_person_text"`
	CurrencyCode       string  `json:"currency_code"`
}

type OpenScreenRequest struct{}

// OpenScreenResponse carries the token to send as "Authorization: Bearer <token>"
// on every later call for this screen.
type OpenScreenResponse struct {
	Token  string  `json:"token"`
	Screen *Screen `json:"screen"`
}

type GetScreenRequest struct{}

type GetScreenResponse struct {
	Screen *Screen `json:"screen"`
}

// UpdateScreenRequest changes any subset of the inputs. Absent fields are left alone.
// Updates are applied all-or-nothing.
type UpdateScreenRequest struct {
	CheckAmount     *float64 `json:"check_amount,omitempty"`
	CheckAmountText *string  `json:"check_amount_text,omitempty"`
	NumberOfPeople  *int     `json:"number_of_people,omitempty"`
	TipPercentage   *int     `json:"tip_percentage,omitempty"`
}

type UpdateScreenResponse struct {
	Screen *Screen `json:"screen"`
}

type FocusAmountRequest struct{}

type FocusAmountResponse struct {
	Screen *Screen `json:"screen"`
}

// DismissRequest is the "Done" action.
type DismissRequest struct{}

type DismissResponse struct {
	Screen *Screen `json:"screen"`
}

type CloseScreenRequest struct{}

type CloseScreenResponse struct{}
