// Package apiv1connect wires glossary.v1.GlossaryService to Connect handlers and clients.
package apiv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	apiv1 "github.com/at-ishikawa/glossary/internal/api/v1"
)

// GlossaryServiceName is the fully-qualified name of the GlossaryService service.
const GlossaryServiceName = "glossary.v1.GlossaryService"

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
const (
	GlossaryServiceGetTermProcedure             = "/glossary.v1.GlossaryService/GetTerm"
	GlossaryServiceAddTermProcedure             = "/glossary.v1.GlossaryService/AddTerm"
	GlossaryServiceUpdateTermProcedure          = "/glossary.v1.GlossaryService/UpdateTerm"
	GlossaryServiceDeleteTermProcedure          = "/glossary.v1.GlossaryService/DeleteTerm"
	GlossaryServiceListTermsProcedure           = "/glossary.v1.GlossaryService/ListTerms"
	GlossaryServiceSearchTermsProcedure         = "/glossary.v1.GlossaryService/SearchTerms"
	GlossaryServiceListTermsByCategoryProcedure = "/glossary.v1.GlossaryService/ListTermsByCategory"
)

// GlossaryServiceClient is a client for the glossary.v1.GlossaryService service.
type GlossaryServiceClient interface {
	GetTerm(context.Context, *connect.Request[apiv1.GetTermRequest]) (*connect.Response[apiv1.GetTermResponse], error)
	AddTerm(context.Context, *connect.Request[apiv1.AddTermRequest]) (*connect.Response[apiv1.AddTermResponse], error)
	UpdateTerm(context.Context, *connect.Request[apiv1.UpdateTermRequest]) (*connect.Response[apiv1.UpdateTermResponse], error)
	DeleteTerm(context.Context, *connect.Request[apiv1.DeleteTermRequest]) (*connect.Response[apiv1.DeleteTermResponse], error)
	ListTerms(context.Context, *connect.Request[apiv1.ListTermsRequest]) (*connect.Response[apiv1.ListTermsResponse], error)
	SearchTerms(context.Context, *connect.Request[apiv1.SearchTermsRequest]) (*connect.Response[apiv1.SearchTermsResponse], error)
	ListTermsByCategory(context.Context, *connect.Request[apiv1.ListTermsByCategoryRequest]) (*connect.Response[apiv1.ListTermsByCategoryResponse], error)
}

// NewGlossaryServiceClient constructs a client for the glossary.v1.GlossaryService service.
// Requests are encoded with apiv1.JSONCodec over the Connect protocol.
//
// The URL supplied here should be the base URL for the Connect server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewGlossaryServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) GlossaryServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(apiv1.JSONCodec{})}, opts...)
	return &glossaryServiceClient{
		getTerm: connect.NewClient[apiv1.GetTermRequest, apiv1.GetTermResponse](
			httpClient,
			baseURL+GlossaryServiceGetTermProcedure,
			connect.WithClientOptions(opts...),
		),
		addTerm: connect.NewClient[apiv1.AddTermRequest, apiv1.AddTermResponse](
			httpClient,
			baseURL+GlossaryServiceAddTermProcedure,
			connect.WithClientOptions(opts...),
		),
		updateTerm: connect.NewClient[apiv1.UpdateTermRequest, apiv1.UpdateTermResponse](
			httpClient,
			baseURL+GlossaryServiceUpdateTermProcedure,
			connect.WithClientOptions(opts...),
		),
		deleteTerm: connect.NewClient[apiv1.DeleteTermRequest, apiv1.DeleteTermResponse](
			httpClient,
			baseURL+GlossaryServiceDeleteTermProcedure,
			connect.WithClientOptions(opts...),
		),
		listTerms: connect.NewClient[apiv1.ListTermsRequest, apiv1.ListTermsResponse](
			httpClient,
			baseURL+GlossaryServiceListTermsProcedure,
			connect.WithClientOptions(opts...),
		),
		searchTerms: connect.NewClient[apiv1.SearchTermsRequest, apiv1.SearchTermsResponse](
			httpClient,
			baseURL+GlossaryServiceSearchTermsProcedure,
			connect.WithClientOptions(opts...),
		),
		listTermsByCategory: connect.NewClient[apiv1.ListTermsByCategoryRequest, apiv1.ListTermsByCategoryResponse](
			httpClient,
			baseURL+GlossaryServiceListTermsByCategoryProcedure,
			connect.WithClientOptions(opts...),
		),
	}
}

// glossaryServiceClient implements GlossaryServiceClient.
type glossaryServiceClient struct {
	getTerm             *connect.Client[apiv1.GetTermRequest, apiv1.GetTermResponse]
	addTerm             *connect.Client[apiv1.AddTermRequest, apiv1.AddTermResponse]
	updateTerm          *connect.Client[apiv1.UpdateTermRequest, apiv1.UpdateTermResponse]
	deleteTerm          *connect.Client[apiv1.DeleteTermRequest, apiv1.DeleteTermResponse]
	listTerms           *connect.Client[apiv1.ListTermsRequest, apiv1.ListTermsResponse]
	searchTerms         *connect.Client[apiv1.SearchTermsRequest, apiv1.SearchTermsResponse]
	listTermsByCategory *connect.Client[apiv1.ListTermsByCategoryRequest, apiv1.ListTermsByCategoryResponse]
}

// GetTerm calls glossary.v1.GlossaryService.GetTerm.
func (c *glossaryServiceClient) GetTerm(ctx context.Context, req *connect.Request[apiv1.GetTermRequest]) (*connect.Response[apiv1.GetTermResponse], error) {
	return c.getTerm.CallUnary(ctx, req)
}

// AddTerm calls glossary.v1.GlossaryService.AddTerm.
func (c *glossaryServiceClient) AddTerm(ctx context.Context, req *connect.Request[apiv1.AddTermRequest]) (*connect.Response[apiv1.AddTermResponse], error) {
	return c.addTerm.CallUnary(ctx, req)
}

// UpdateTerm calls glossary.v1.GlossaryService.UpdateTerm.
func (c *glossaryServiceClient) UpdateTerm(ctx context.Context, req *connect.Request[apiv1.UpdateTermRequest]) (*connect.Response[apiv1.UpdateTermResponse], error) {
	return c.updateTerm.CallUnary(ctx, req)
}

// DeleteTerm calls glossary.v1.GlossaryService.DeleteTerm.
func (c *glossaryServiceClient) DeleteTerm(ctx context.Context, req *connect.Request[apiv1.DeleteTermRequest]) (*connect.Response[apiv1.DeleteTermResponse], error) {
	return c.deleteTerm.CallUnary(ctx, req)
}

// ListTerms calls glossary.v1.GlossaryService.ListTerms.
func (c *glossaryServiceClient) ListTerms(ctx context.Context, req *connect.Request[apiv1.ListTermsRequest]) (*connect.Response[apiv1.ListTermsResponse], error) {
	return c.listTerms.CallUnary(ctx, req)
}

// SearchTerms calls glossary.v1.GlossaryService.SearchTerms.
func (c *glossaryServiceClient) SearchTerms(ctx context.Context, req *connect.Request[apiv1.SearchTermsRequest]) (*connect.Response[apiv1.SearchTermsResponse], error) {
	return c.searchTerms.CallUnary(ctx, req)
}

// ListTermsByCategory calls glossary.v1.GlossaryService.ListTermsByCategory.
func (c *glossaryServiceClient) ListTermsByCategory(ctx context.Context, req *connect.Request[apiv1.ListTermsByCategoryRequest]) (*connect.Response[apiv1.ListTermsByCategoryResponse], error) {
	return c.listTermsByCategory.CallUnary(ctx, req)
}

// GlossaryServiceHandler is an implementation of the glossary.v1.GlossaryService service.
type GlossaryServiceHandler interface {
	GetTerm(context.Context, *connect.Request[apiv1.GetTermRequest]) (*connect.Response[apiv1.GetTermResponse], error)
	AddTerm(context.Context, *connect.Request[apiv1.AddTermRequest]) (*connect.Response[apiv1.AddTermResponse], error)
	UpdateTerm(context.Context, *connect.Request[apiv1.UpdateTermRequest]) (*connect.Response[apiv1.UpdateTermResponse], error)
	DeleteTerm(context.Context, *connect.Request[apiv1.DeleteTermRequest]) (*connect.Response[apiv1.DeleteTermResponse], error)
	ListTerms(context.Context, *connect.Request[apiv1.ListTermsRequest]) (*connect.Response[apiv1.ListTermsResponse], error)
	SearchTerms(context.Context, *connect.Request[apiv1.SearchTermsRequest]) (*connect.Response[apiv1.SearchTermsResponse], error)
	ListTermsByCategory(context.Context, *connect.Request[apiv1.ListTermsByCategoryRequest]) (*connect.Response[apiv1.ListTermsByCategoryResponse], error)
}

// NewGlossaryServiceHandler builds an HTTP handler from the service implementation. It returns
// the path on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with the JSON codec.
func NewGlossaryServiceHandler(svc GlossaryServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(apiv1.JSONCodec{})}, opts...)
	glossaryServiceGetTermHandler := connect.NewUnaryHandler(
		GlossaryServiceGetTermProcedure,
		svc.GetTerm,
		connect.WithHandlerOptions(opts...),
	)
	glossaryServiceAddTermHandler := connect.NewUnaryHandler(
		GlossaryServiceAddTermProcedure,
		svc.AddTerm,
		connect.WithHandlerOptions(opts...),
	)
	glossaryServiceUpdateTermHandler := connect.NewUnaryHandler(
		GlossaryServiceUpdateTermProcedure,
		svc.UpdateTerm,
		connect.WithHandlerOptions(opts...),
	)
	glossaryServiceDeleteTermHandler := connect.NewUnaryHandler(
		GlossaryServiceDeleteTermProcedure,
		svc.DeleteTerm,
		connect.WithHandlerOptions(opts...),
	)
	glossaryServiceListTermsHandler := connect.NewUnaryHandler(
		GlossaryServiceListTermsProcedure,
		svc.ListTerms,
		connect.WithHandlerOptions(opts...),
	)
	glossaryServiceSearchTermsHandler := connect.NewUnaryHandler(
		GlossaryServiceSearchTermsProcedure,
		svc.SearchTerms,
		connect.WithHandlerOptions(opts...),
	)
	glossaryServiceListTermsByCategoryHandler := connect.NewUnaryHandler(
		GlossaryServiceListTermsByCategoryProcedure,
		svc.ListTermsByCategory,
		connect.WithHandlerOptions(opts...),
	)
	return "/glossary.v1.GlossaryService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case GlossaryServiceGetTermProcedure:
			glossaryServiceGetTermHandler.ServeHTTP(w, r)
		case GlossaryServiceAddTermProcedure:
			glossaryServiceAddTermHandler.ServeHTTP(w, r)
		case GlossaryServiceUpdateTermProcedure:
			glossaryServiceUpdateTermHandler.ServeHTTP(w, r)
		case GlossaryServiceDeleteTermProcedure:
			glossaryServiceDeleteTermHandler.ServeHTTP(w, r)
		case GlossaryServiceListTermsProcedure:
			glossaryServiceListTermsHandler.ServeHTTP(w, r)
		case GlossaryServiceSearchTermsProcedure:
			glossaryServiceSearchTermsHandler.ServeHTTP(w, r)
		case GlossaryServiceListTermsByCategoryProcedure:
			glossaryServiceListTermsByCategoryHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedGlossaryServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedGlossaryServiceHandler struct{}

func (UnimplementedGlossaryServiceHandler) GetTerm(context.Context, *connect.Request[apiv1.GetTermRequest]) (*connect.Response[apiv1.GetTermResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("glossary.v1.GlossaryService.GetTerm is not implemented"))
}

func (UnimplementedGlossaryServiceHandler) AddTerm(context.Context, *connect.Request[apiv1.AddTermRequest]) (*connect.Response[apiv1.AddTermResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("glossary.v1.GlossaryService.AddTerm is not implemented"))
}

func (UnimplementedGlossaryServiceHandler) UpdateTerm(context.Context, *connect.Request[apiv1.UpdateTermRequest]) (*connect.Response[apiv1.UpdateTermResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("glossary.v1.GlossaryService.UpdateTerm is not implemented"))
}

func (UnimplementedGlossaryServiceHandler) DeleteTerm(context.Context, *connect.Request[apiv1.DeleteTermRequest]) (*connect.Response[apiv1.DeleteTermResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("glossary.v1.GlossaryService.DeleteTerm is not implemented"))
}

func (UnimplementedGlossaryServiceHandler) ListTerms(context.Context, *connect.Request[apiv1.ListTermsRequest]) (*connect.Response[apiv1.ListTermsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("glossary.v1.GlossaryService.ListTerms is not implemented"))
}

func (UnimplementedGlossaryServiceHandler) SearchTerms(context.Context, *connect.Request[apiv1.SearchTermsRequest]) (*connect.Response[apiv1.SearchTermsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("glossary.v1.GlossaryService.SearchTerms is not implemented"))
}

func (UnimplementedGlossaryServiceHandler) ListTermsByCategory(context.Context, *connect.Request[apiv1.ListTermsByCategoryRequest]) (*connect.Response[apiv1.ListTermsByCategoryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("glossary.v1.GlossaryService.ListTermsByCategory is not implemented"))
}
