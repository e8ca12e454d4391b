package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/wesplit/internal/auth"
	"github.com/mmynk/wesplit/internal/calculator"
	"github.com/mmynk/wesplit/internal/currency"
	"github.com/mmynk/wesplit/internal/metrics"
	"github.com/mmynk/wesplit/internal/middleware"
	"github.com/mmynk/wesplit/internal/models"
	"github.com/mmynk/wesplit/internal/screen"
	"github.com/mmynk/wesplit/internal/storage"
	"github.com/mmynk/wesplit/pkg/api"
	"github.com/mmynk/wesplit/pkg/api/apiconnect"
)

// SplitService implements the Connect SplitService
type SplitService struct {
	apiconnect.UnimplementedSplitServiceHandler
	store     storage.Store
	tokens    *auth.TokenManager
	formatter *currency.Formatter
	metrics   *metrics.Metrics
}

// NewSplitService creates a new SplitService. m may be nil.
func NewSplitService(store storage.Store, tokens *auth.TokenManager, formatter *currency.Formatter, m *metrics.Metrics) *SplitService {
	return &SplitService{
		store:     store,
		tokens:    tokens,
		formatter: formatter,
		metrics:   m,
	}
}

// Calculate handles a one-shot split. Inputs are held to the same domain as a screen.
func (s *SplitService) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	slog.Debug("Calculate request received",
		"check_amount", req.Msg.CheckAmount,
		"number_of_people", req.Msg.NumberOfPeople,
		"tip_percentage", req.Msg.TipPercentage,
	)

	st := screen.New()
	if err := errors.Join(
		st.SetCheckAmount(req.Msg.CheckAmount),
		st.SetNumberOfPeople(req.Msg.NumberOfPeople),
		st.SetTipPercentage(req.Msg.TipPercentage),
	); err != nil {
		slog.Error("Calculate failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	b := st.Breakdown()
	s.metrics.ObserveCalculation(st.TipPercentage())

	return connect.NewResponse(&api.CalculateResponse{
		PeopleCount:        b.PeopleCount,
		TipValue:           b.TipValue,
		GrandTotal:         b.GrandTotal,
		TotalPerPerson:     b.TotalPerPerson,
		TotalPerPersonText: s.formatter.Format(b.TotalPerPerson),
		CurrencyCode:       s.formatter.Code(),
	}), nil
}

// OpenScreen creates a screen with default inputs and returns its token.
func (s *SplitService) OpenScreen(ctx context.Context, req *connect.Request[api.OpenScreenRequest]) (*connect.Response[api.OpenScreenResponse], error) {
	screenID, err := s.store.OpenScreen(ctx)
	if err != nil {
		slog.Error("OpenScreen failed", "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.ScreenOpened()

	token, err := s.tokens.Generate(screenID)
	if err != nil {
		slog.Error("OpenScreen: failed to sign token", "screen_id", screenID, "error", err)
		if closeErr := s.store.CloseScreen(ctx, screenID); closeErr != nil {
			slog.Warn("OpenScreen: failed to drop screen", "screen_id", screenID, "error", closeErr)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	view, err := s.view(ctx, screenID, nil)
	if err != nil {
		return nil, err
	}

	slog.Info("Screen opened", "screen_id", screenID, "open", s.store.Count())

	resp := connect.NewResponse(&api.OpenScreenResponse{Token: token, Screen: view})
	resp.Header().Set(middleware.ScreenIDHeader, screenID)
	return resp, nil
}

// GetScreen returns the current read-out of the caller's screen.
func (s *SplitService) GetScreen(ctx context.Context, req *connect.Request[api.GetScreenRequest]) (*connect.Response[api.GetScreenResponse], error) {
	screenID, err := requireScreenID(ctx)
	if err != nil {
		return nil, err
	}
	view, err := s.view(ctx, screenID, nil)
	if err != nil {
		return nil, err
	}
	return withScreenHeader(connect.NewResponse(&api.GetScreenResponse{Screen: view}), screenID), nil
}

// UpdateScreen applies the present fields. If any field is rejected none are applied.
func (s *SplitService) UpdateScreen(ctx context.Context, req *connect.Request[api.UpdateScreenRequest]) (*connect.Response[api.UpdateScreenResponse], error) {
	screenID, err := requireScreenID(ctx)
	if err != nil {
		return nil, err
	}

	msg := req.Msg
	if msg.CheckAmount != nil && msg.CheckAmountText != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("check_amount and check_amount_text are mutually exclusive"))
	}

	view, err := s.view(ctx, screenID, func(st *screen.State) error {
		draft := *st
		if msg.CheckAmountText != nil {
			v, err := s.formatter.ParseAmount(*msg.CheckAmountText)
			if err != nil {
				return err
			}
			if err := draft.SetCheckAmount(v); err != nil {
				return err
			}
		}
		if msg.CheckAmount != nil {
			if err := draft.SetCheckAmount(*msg.CheckAmount); err != nil {
				return err
			}
		}
		if msg.NumberOfPeople != nil {
			if err := draft.SetNumberOfPeople(*msg.NumberOfPeople); err != nil {
				return err
			}
		}
		if msg.TipPercentage != nil {
			if err := draft.SetTipPercentage(*msg.TipPercentage); err != nil {
				return err
			}
		}
		*st = draft
		return nil
	})
	if err != nil {
		slog.Error("UpdateScreen failed", "screen_id", screenID, "error", err)
		return nil, err
	}
	s.metrics.ObserveCalculation(view.TipPercentage)

	return withScreenHeader(connect.NewResponse(&api.UpdateScreenResponse{Screen: view}), screenID), nil
}

// FocusAmount marks the amount field as being edited.
func (s *SplitService) FocusAmount(ctx context.Context, req *connect.Request[api.FocusAmountRequest]) (*connect.Response[api.FocusAmountResponse], error) {
	screenID, err := requireScreenID(ctx)
	if err != nil {
		return nil, err
	}
	view, err := s.view(ctx, screenID, func(st *screen.State) error {
		st.FocusAmount()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return withScreenHeader(connect.NewResponse(&api.FocusAmountResponse{Screen: view}), screenID), nil
}

// Dismiss is the "Done" action: it clears focus and leaves the inputs alone.
func (s *SplitService) Dismiss(ctx context.Context, req *connect.Request[api.DismissRequest]) (*connect.Response[api.DismissResponse], error) {
	screenID, err := requireScreenID(ctx)
	if err != nil {
		return nil, err
	}
	view, err := s.view(ctx, screenID, func(st *screen.State) error {
		st.ClearFocus()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return withScreenHeader(connect.NewResponse(&api.DismissResponse{Screen: view}), screenID), nil
}

// CloseScreen drops the caller's screen. Its token stops working.
func (s *SplitService) CloseScreen(ctx context.Context, req *connect.Request[api.CloseScreenRequest]) (*connect.Response[api.CloseScreenResponse], error) {
	screenID, err := requireScreenID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.CloseScreen(ctx, screenID); err != nil {
		slog.Error("CloseScreen failed", "screen_id", screenID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Screen closed", "screen_id", screenID, "open", s.store.Count())
	return withScreenHeader(connect.NewResponse(&api.CloseScreenResponse{}), screenID), nil
}

// view runs mutate (if any) on the screen and returns the resulting read-out.
func (s *SplitService) view(ctx context.Context, screenID string, mutate func(st *screen.State) error) (*api.Screen, error) {
	var snap models.Snapshot
	err := s.store.WithScreen(ctx, screenID, func(st *screen.State) error {
		if mutate != nil {
			if err := mutate(st); err != nil {
				return err
			}
		}
		snap = st.Snapshot()
		return nil
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	snap.ScreenID = screenID
	return s.toAPIScreen(snap), nil
}

func (s *SplitService) toAPIScreen(snap models.Snapshot) *api.Screen {
	return &api.Screen{
		ScreenID:           snap.ScreenID,
		CheckAmount:        snap.CheckAmount,
		NumberOfPeople:     snap.NumberOfPeople,
		PeopleCount:        snap.PeopleCount,
		TipPercentage:      snap.TipPercentage,
		TotalPerPerson:     snap.TotalPerPerson,
		TotalPerPersonText: s.formatter.Format(snap.TotalPerPerson),
		CurrencyCode:       s.formatter.Code(),
		AmountFocused:      snap.AmountFocused,
		ShowDone:           snap.ShowDone,
	}
}

func requireScreenID(ctx context.Context) (string, error) {
	screenID := middleware.GetScreenID(ctx)
	if screenID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return screenID, nil
}

func withScreenHeader[T any](resp *connect.Response[T], screenID string) *connect.Response[T] {
	resp.Header().Set(middleware.ScreenIDHeader, screenID)
	return resp
}

// toConnectError maps domain errors onto Connect codes.
func toConnectError(err error) error {
	var connectErr *connect.Error
	switch {
	case errors.As(err, &connectErr):
		return err
	case errors.Is(err, storage.ErrScreenNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, screen.ErrInvalidAmount),
		errors.Is(err, screen.ErrNegativeAmount),
		errors.Is(err, screen.ErrAmountTooLarge),
		errors.Is(err, screen.ErrPeopleOutOfRange),
		errors.Is(err, screen.ErrUnsupportedTip),
		errors.Is(err, currency.ErrNotNumeric),
		errors.Is(err, calculator.ErrInvalidDivisor),
		errors.Is(err, calculator.ErrNonFiniteResult):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
