// Package models defines the domain values shared by the WeSplit screen,
// the RPC service and the terminal front-end.
//
// # Inputs
//
//   - CheckAmount: non-negative amount in the host currency, default 0
//   - NumberOfPeople: party-size offset, displayed people = offset + 2
//   - TipPercentage: one of TipPercentages, default 20
//
// The party-size offset mirrors a picker listing 2 through 98 people, so the
// valid stored range is 0 through MaxPeopleOffset.
//
// # Derived values
//
// TotalPerPerson and ShowDone are never stored; Snapshot carries them only
// as a read-out of a screen at one instant.
package models
