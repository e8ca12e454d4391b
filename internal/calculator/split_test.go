package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestCalculateSplit(t *testing.T) {
	tests := []struct {
		name           string
		checkAmount    float64
		numberOfPeople int
		tipPercentage  int
		wantErr        error
		validateFunc   func(t *testing.T, b *Breakdown)
	}{
		{
			name:           "two people with twenty percent tip",
			checkAmount:    100,
			numberOfPeople: 0,
			tipPercentage:  20,
			validateFunc: func(t *testing.T, b *Breakdown) {
				// tip = 100 / 100 * 20 = 20, grand = 120, per person = 120 / 2 = 60
				if b.PeopleCount != 2 {
					t.Errorf("PeopleCount = %d, want 2", b.PeopleCount)
				}
				if math.Abs(b.TipValue-20.0) > 1e-9 {
					t.Errorf("TipValue = %v, want 20.0", b.TipValue)
				}
				if math.Abs(b.GrandTotal-120.0) > 1e-9 {
					t.Errorf("GrandTotal = %v, want 120.0", b.GrandTotal)
				}
				if math.Abs(b.TotalPerPerson-60.0) > 1e-9 {
					t.Errorf("TotalPerPerson = %v, want 60.0", b.TotalPerPerson)
				}
			},
		},
		{
			name:           "five people without tip",
			checkAmount:    50,
			numberOfPeople: 3,
			tipPercentage:  0,
			validateFunc: func(t *testing.T, b *Breakdown) {
				if b.PeopleCount != 5 {
					t.Errorf("PeopleCount = %d, want 5", b.PeopleCount)
				}
				if b.GrandTotal != 50.0 {
					t.Errorf("GrandTotal = %v, want 50.0", b.GrandTotal)
				}
				if math.Abs(b.TotalPerPerson-10.0) > 1e-9 {
					t.Errorf("TotalPerPerson = %v, want 10.0", b.TotalPerPerson)
				}
			},
		},
		{
			name:           "zero check amount",
			checkAmount:    0,
			numberOfPeople: 10,
			tipPercentage:  25,
			validateFunc: func(t *testing.T, b *Breakdown) {
				if b.TotalPerPerson != 0 {
					t.Errorf("TotalPerPerson = %v, want 0", b.TotalPerPerson)
				}
			},
		},
		{
			name:           "three people leaves an unrounded share",
			checkAmount:    10,
			numberOfPeople: 1,
			tipPercentage:  0,
			validateFunc: func(t *testing.T, b *Breakdown) {
				if math.Abs(b.TotalPerPerson-10.0/3.0) > 1e-12 {
					t.Errorf("TotalPerPerson = %v, want %v", b.TotalPerPerson, 10.0/3.0)
				}
			},
		},
		{
			name:           "offset resolving to one person is allowed",
			checkAmount:    40,
			numberOfPeople: -1,
			tipPercentage:  25,
			validateFunc: func(t *testing.T, b *Breakdown) {
				if b.PeopleCount != 1 {
					t.Errorf("PeopleCount = %d, want 1", b.PeopleCount)
				}
				if math.Abs(b.TotalPerPerson-50.0) > 1e-9 {
					t.Errorf("TotalPerPerson = %v, want 50.0", b.TotalPerPerson)
				}
			},
		},
		{
			name:           "offset resolving to zero people should error",
			checkAmount:    40,
			numberOfPeople: -2,
			tipPercentage:  10,
			wantErr:        ErrInvalidDivisor,
		},
		{
			name:           "total overflowing float64 should error",
			checkAmount:    1.7e308,
			numberOfPeople: 0,
			tipPercentage:  25,
			wantErr:        ErrNonFiniteResult,
		},
		{
			name:           "negative head count should error",
			checkAmount:    40,
			numberOfPeople: -7,
			tipPercentage:  10,
			wantErr:        ErrInvalidDivisor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := CalculateSplit(tt.checkAmount, tt.numberOfPeople, tt.tipPercentage)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CalculateSplit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && tt.validateFunc != nil {
				tt.validateFunc(t, b)
			}
		})
	}
}

var (
	testAmounts = []float64{0, 0.01, 1, 12.34, 50, 100, 999.99, 12345.67}
	testTips    = []int{0, 10, 20, 25}
)

func TestTotalPerPerson_NonNegative(t *testing.T) {
	for _, amount := range testAmounts {
		for _, tip := range testTips {
			for offset := 0; offset <= 96; offset++ {
				got, err := TotalPerPerson(amount, offset, tip)
				if err != nil {
					t.Fatalf("TotalPerPerson(%v, %d, %d) unexpected error: %v", amount, offset, tip, err)
				}
				if got < 0 {
					t.Errorf("TotalPerPerson(%v, %d, %d) = %v, want >= 0", amount, offset, tip, got)
				}
				if amount == 0 && got != 0 {
					t.Errorf("TotalPerPerson(0, %d, %d) = %v, want 0", offset, tip, got)
				}
			}
		}
	}
}

func TestTotalPerPerson_NonIncreasingInPeople(t *testing.T) {
	for _, amount := range testAmounts {
		for _, tip := range testTips {
			prev, _ := TotalPerPerson(amount, 0, tip)
			for offset := 1; offset <= 96; offset++ {
				got, _ := TotalPerPerson(amount, offset, tip)
				if got > prev {
					t.Errorf("amount=%v tip=%d: offset %d gives %v, more than %v at offset %d",
						amount, tip, offset, got, prev, offset-1)
				}
				prev = got
			}
		}
	}
}

func TestTotalPerPerson_NonDecreasingInTip(t *testing.T) {
	ascending := []int{0, 10, 20, 25}
	for _, amount := range testAmounts {
		for offset := 0; offset <= 96; offset += 8 {
			prev, _ := TotalPerPerson(amount, offset, ascending[0])
			for _, tip := range ascending[1:] {
				got, _ := TotalPerPerson(amount, offset, tip)
				if got < prev {
					t.Errorf("amount=%v offset=%d: tip %d gives %v, less than %v", amount, offset, tip, got, prev)
				}
				prev = got
			}
		}
	}
}

func TestTotalPerPerson_Error(t *testing.T) {
	got, err := TotalPerPerson(100, -2, 20)
	if !errors.Is(err, ErrInvalidDivisor) {
		t.Fatalf("expected ErrInvalidDivisor, got %v", err)
	}
	if got != 0 {
		t.Errorf("expected zero value on error, got %v", got)
	}
}
