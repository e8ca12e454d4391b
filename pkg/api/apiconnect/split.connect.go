// Package apiconnect wires wesplit.v1.SplitService to Connect handlers and clients.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/wesplit/pkg/api"
)

// SplitServiceName is the fully-qualified name of the SplitService service.
const SplitServiceName = "wesplit.v1.SplitService"

// Procedure paths for SplitService RPCs.
const (
	SplitServiceCalculateProcedure    = "/wesplit.v1.SplitService/Calculate"
	SplitServiceOpenScreenProcedure   = "/wesplit.v1.SplitService/OpenScreen"
	SplitServiceGetScreenProcedure    = "/wesplit.v1.SplitService/GetScreen"
	SplitServiceUpdateScreenProcedure = "/wesplit.v1.SplitService/UpdateScreen"
	SplitServiceFocusAmountProcedure  = "/wesplit.v1.SplitService/FocusAmount"
	SplitServiceDismissProcedure      = "/wesplit.v1.SplitService/Dismiss"
	SplitServiceCloseScreenProcedure  = "/wesplit.v1.SplitService/CloseScreen"
)

// PublicProcedures do not need a screen token.
var PublicProcedures = map[string]bool{
	SplitServiceCalculateProcedure:  true,
	SplitServiceOpenScreenProcedure: true,
}

// SplitServiceHandler is implemented by the server.
type SplitServiceHandler interface {
	Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error)
	OpenScreen(context.Context, *connect.Request[api.OpenScreenRequest]) (*connect.Response[api.OpenScreenResponse], error)
	GetScreen(context.Context, *connect.Request[api.GetScreenRequest]) (*connect.Response[api.GetScreenResponse], error)
	UpdateScreen(context.Context, *connect.Request[api.UpdateScreenRequest]) (*connect.Response[api.UpdateScreenResponse], error)
	FocusAmount(context.Context, *connect.Request[api.FocusAmountRequest]) (*connect.Response[api.FocusAmountResponse], error)
	Dismiss(context.Context, *connect.Request[api.DismissRequest]) (*connect.Response[api.DismissResponse], error)
	CloseScreen(context.Context, *connect.Request[api.CloseScreenRequest]) (*connect.Response[api.CloseScreenResponse], error)
}

// NewSplitServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewSplitServiceHandler(svc SplitServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	handlers := map[string]http.Handler{
		SplitServiceCalculateProcedure:    connect.NewUnaryHandler(SplitServiceCalculateProcedure, svc.Calculate, opts...),
		SplitServiceOpenScreenProcedure:   connect.NewUnaryHandler(SplitServiceOpenScreenProcedure, svc.OpenScreen, opts...),
		SplitServiceGetScreenProcedure:    connect.NewUnaryHandler(SplitServiceGetScreenProcedure, svc.GetScreen, opts...),
		SplitServiceUpdateScreenProcedure: connect.NewUnaryHandler(SplitServiceUpdateScreenProcedure, svc.UpdateScreen, opts...),
		SplitServiceFocusAmountProcedure:  connect.NewUnaryHandler(SplitServiceFocusAmountProcedure, svc.FocusAmount, opts...),
		SplitServiceDismissProcedure:      connect.NewUnaryHandler(SplitServiceDismissProcedure, svc.Dismiss, opts...),
		SplitServiceCloseScreenProcedure:  connect.NewUnaryHandler(SplitServiceCloseScreenProcedure, svc.CloseScreen, opts...),
	}

	return "/" + SplitServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// SplitServiceClient is a client for wesplit.v1.SplitService.
type SplitServiceClient interface {
	Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error)
	OpenScreen(context.Context, *connect.Request[api.OpenScreenRequest]) (*connect.Response[api.OpenScreenResponse], error)
	GetScreen(context.Context, *connect.Request[api.GetScreenRequest]) (*connect.Response[api.GetScreenResponse], error)
	UpdateScreen(context.Context, *connect.Request[api.UpdateScreenRequest]) (*connect.Response[api.UpdateScreenResponse], error)
	FocusAmount(context.Context, *connect.Request[api.FocusAmountRequest]) (*connect.Response[api.FocusAmountResponse], error)
	Dismiss(context.Context, *connect.Request[api.DismissRequest]) (*connect.Response[api.DismissResponse], error)
	CloseScreen(context.Context, *connect.Request[api.CloseScreenRequest]) (*connect.Response[api.CloseScreenResponse], error)
}

// NewSplitServiceClient constructs a client for the service at baseURL,
// e.g. http://localhost:8080.
func NewSplitServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SplitServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
	return &splitServiceClient{
		calculate:    connect.NewClient[api.CalculateRequest, api.CalculateResponse](httpClient, baseURL+SplitServiceCalculateProcedure, opts...),
		openScreen:   connect.NewClient[api.OpenScreenRequest, api.OpenScreenResponse](httpClient, baseURL+SplitServiceOpenScreenProcedure, opts...),
		getScreen:    connect.NewClient[api.GetScreenRequest, api.GetScreenResponse](httpClient, baseURL+SplitServiceGetScreenProcedure, opts...),
		updateScreen: connect.NewClient[api.UpdateScreenRequest, api.UpdateScreenResponse](httpClient, baseURL+SplitServiceUpdateScreenProcedure, opts...),
		focusAmount:  connect.NewClient[api.FocusAmountRequest, api.FocusAmountResponse](httpClient, baseURL+SplitServiceFocusAmountProcedure, opts...),
		dismiss:      connect.NewClient[api.DismissRequest, api.DismissResponse](httpClient, baseURL+SplitServiceDismissProcedure, opts...),
		closeScreen:  connect.NewClient[api.CloseScreenRequest, api.CloseScreenResponse](httpClient, baseURL+SplitServiceCloseScreenProcedure, opts...),
	}
}

type splitServiceClient struct {
	calculate    *connect.Client[api.CalculateRequest, api.CalculateResponse]
	openScreen   *connect.Client[api.OpenScreenRequest, api.OpenScreenResponse]
	getScreen    *connect.Client[api.GetScreenRequest, api.GetScreenResponse]
	updateScreen *connect.Client[api.UpdateScreenRequest, api.UpdateScreenResponse]
	focusAmount  *connect.Client[api.FocusAmountRequest, api.FocusAmountResponse]
	dismiss      *connect.Client[api.DismissRequest, api.DismissResponse]
	closeScreen  *connect.Client[api.CloseScreenRequest, api.CloseScreenResponse]
}

func (c *splitServiceClient) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	return c.calculate.CallUnary(ctx, req)
}

func (c *splitServiceClient) OpenScreen(ctx context.Context, req *connect.Request[api.OpenScreenRequest]) (*connect.Response[api.OpenScreenResponse], error) {
	return c.openScreen.CallUnary(ctx, req)
}

func (c *splitServiceClient) GetScreen(ctx context.Context, req *connect.Request[api.GetScreenRequest]) (*connect.Response[api.GetScreenResponse], error) {
	return c.getScreen.CallUnary(ctx, req)
}

func (c *splitServiceClient) UpdateScreen(ctx context.Context, req *connect.Request[api.UpdateScreenRequest]) (*connect.Response[api.UpdateScreenResponse], error) {
	return c.updateScreen.CallUnary(ctx, req)
}

func (c *splitServiceClient) FocusAmount(ctx context.Context, req *connect.Request[api.FocusAmountRequest]) (*connect.Response[api.FocusAmountResponse], error) {
	return c.focusAmount.CallUnary(ctx, req)
}

func (c *splitServiceClient) Dismiss(ctx context.Context, req *connect.Request[api.DismissRequest]) (*connect.Response[api.DismissResponse], error) {
	return c.dismiss.CallUnary(ctx, req)
}

func (c *splitServiceClient) CloseScreen(ctx context.Context, req *connect.Request[api.CloseScreenRequest]) (*connect.Response[api.CloseScreenResponse], error) {
	return c.closeScreen.CallUnary(ctx, req)
}

// UnimplementedSplitServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedSplitServiceHandler struct{}

func (UnimplementedSplitServiceHandler) Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("wesplit.v1.SplitService.Calculate is not implemented"))
}

func (UnimplementedSplitServiceHandler) OpenScreen(context.Context, *connect.Request[api.OpenScreenRequest]) (*connect.Response[api.OpenScreenResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("wesplit.v1.SplitService.OpenScreen is not implemented"))
}

func (UnimplementedSplitServiceHandler) GetScreen(context.Context, *connect.Request[api.GetScreenRequest]) (*connect.Response[api.GetScreenResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("wesplit.v1.SplitService.GetScreen is not implemented"))
}

func (UnimplementedSplitServiceHandler) UpdateScreen(context.Context, *connect.Request[api.UpdateScreenRequest]) (*connect.Response[api.UpdateScreenResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("wesplit.v1.SplitService.UpdateScreen is not implemented"))
}

func (UnimplementedSplitServiceHandler) FocusAmount(context.Context, *connect.Request[api.FocusAmountRequest]) (*connect.Response[api.FocusAmountResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("wesplit.v1.SplitService.FocusAmount is not implemented"))
}

func (UnimplementedSplitServiceHandler) Dismiss(context.Context, *connect.Request[api.DismissRequest]) (*connect.Response[api.DismissResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("wesplit.v1.SplitService.Dismiss is not implemented"))
}

func (UnimplementedSplitServiceHandler) CloseScreen(context.Context, *connect.Request[api.CloseScreenRequest]) (*connect.Response[api.CloseScreenResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("wesplit.v1.SplitService.CloseScreen is not implemented"))
}
