// Package server provides Connect RPC handlers for the glossary service.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"google.golang.org/genproto/googleapis/rpc/errdetails"

	apiv1 "github.com/at-ishikawa/glossary/internal/api/v1"
	"github.com/at-ishikawa/glossary/internal/api/v1/apiv1connect"
	"github.com/at-ishikawa/glossary/internal/glossary"
)

const errorDomain = "glossary"

// GlossaryHandler implements the GlossaryServiceHandler interface.
// Single-key RPCs go to the repository; list, search and category RPCs go through the query engine.
type GlossaryHandler struct {
	apiv1connect.UnimplementedGlossaryServiceHandler

	repo      glossary.Repository
	engine    *glossary.QueryEngine
	validator *requestValidator
	logger    *slog.Logger
}

// NewGlossaryHandler creates a new GlossaryHandler. A nil logger means slog.Default().
func NewGlossaryHandler(repo glossary.Repository, logger *slog.Logger) (*GlossaryHandler, error) {
	v, err := newRequestValidator()
	if err != nil {
		return nil, fmt.Errorf("newRequestValidator() > %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GlossaryHandler{
		repo:      repo,
		engine:    glossary.NewQueryEngine(repo),
		validator: v,
		logger:    logger,
	}, nil
}

// GetTerm returns a single entry by its key.
func (h *GlossaryHandler) GetTerm(
	ctx context.Context,
	req *connect.Request[apiv1.GetTermRequest],
) (*connect.Response[apiv1.GetTermResponse], error) {
	if err := h.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	entry, err := h.repo.Get(ctx, req.Msg.Term)
	if err != nil {
		return nil, h.toConnectError(ctx, req.Spec().Procedure, req.Msg.Term, err)
	}

	return connect.NewResponse(&apiv1.GetTermResponse{
		Term: toTerm(entry),
	}), nil
}

// AddTerm creates a new entry. An existing key is rejected.
func (h *GlossaryHandler) AddTerm(
	ctx context.Context,
	req *connect.Request[apiv1.AddTermRequest],
) (*connect.Response[apiv1.AddTermResponse], error) {
	if err := h.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	entry, err := h.repo.Create(ctx, glossary.Entry{
		Term:         req.Msg.Term,
		Definition:   req.Msg.Definition,
		Category:     req.Msg.Category,
		RelatedTerms: req.Msg.RelatedTerms,
		Source:       req.Msg.Source,
	})
	if err != nil {
		return nil, h.toConnectError(ctx, req.Spec().Procedure, req.Msg.Term, err)
	}

	return connect.NewResponse(&apiv1.AddTermResponse{
		Term:    toTerm(entry),
		Message: fmt.Sprintf("Term '%s' added successfully", entry.Term),
	}), nil
}

// UpdateTerm merges the provided fields into an existing entry.
func (h *GlossaryHandler) UpdateTerm(
	ctx context.Context,
	req *connect.Request[apiv1.UpdateTermRequest],
) (*connect.Response[apiv1.UpdateTermResponse], error) {
	if err := h.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	entry, err := h.repo.Update(ctx, req.Msg.Term, glossary.EntryPatch{
		Definition:   req.Msg.Definition,
		Category:     req.Msg.Category,
		RelatedTerms: req.Msg.RelatedTerms,
		Source:       req.Msg.Source,
	})
	if err != nil {
		return nil, h.toConnectError(ctx, req.Spec().Procedure, req.Msg.Term, err)
	}

	return connect.NewResponse(&apiv1.UpdateTermResponse{
		Term:    toTerm(entry),
		Message: fmt.Sprintf("Term '%s' updated successfully", entry.Term),
	}), nil
}

// DeleteTerm removes an entry by its key.
func (h *GlossaryHandler) DeleteTerm(
	ctx context.Context,
	req *connect.Request[apiv1.DeleteTermRequest],
) (*connect.Response[apiv1.DeleteTermResponse], error) {
	if err := h.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	if err := h.repo.Delete(ctx, req.Msg.Term); err != nil {
		return nil, h.toConnectError(ctx, req.Spec().Procedure, req.Msg.Term, err)
	}

	return connect.NewResponse(&apiv1.DeleteTermResponse{
		Message: fmt.Sprintf("Term '%s' deleted successfully", req.Msg.Term),
	}), nil
}

// ListTerms returns one page of all entries in insertion order.
func (h *GlossaryHandler) ListTerms(
	ctx context.Context,
	req *connect.Request[apiv1.ListTermsRequest],
) (*connect.Response[apiv1.ListTermsResponse], error) {
	if err := h.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	result, err := h.engine.List(ctx, int(req.Msg.Page), int(req.Msg.PageSize))
	if err != nil {
		return nil, h.toConnectError(ctx, req.Spec().Procedure, "", err)
	}

	return connect.NewResponse(&apiv1.ListTermsResponse{
		Terms:      toTerms(result.Entries),
		TotalCount: int32(result.TotalCount),
	}), nil
}

// SearchTerms returns the entries whose term, definition or category contains the query.
func (h *GlossaryHandler) SearchTerms(
	ctx context.Context,
	req *connect.Request[apiv1.SearchTermsRequest],
) (*connect.Response[apiv1.SearchTermsResponse], error) {
	if err := h.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	result, err := h.engine.Search(ctx, req.Msg.Query, req.Msg.Category)
	if err != nil {
		return nil, h.toConnectError(ctx, req.Spec().Procedure, "", err)
	}

	return connect.NewResponse(&apiv1.SearchTermsResponse{
		Terms:      toTerms(result.Entries),
		TotalCount: int32(result.TotalCount),
	}), nil
}

// ListTermsByCategory returns the entries of exactly one category.
func (h *GlossaryHandler) ListTermsByCategory(
	ctx context.Context,
	req *connect.Request[apiv1.ListTermsByCategoryRequest],
) (*connect.Response[apiv1.ListTermsByCategoryResponse], error) {
	result, err := h.engine.ByCategory(ctx, req.Msg.Category)
	if err != nil {
		return nil, h.toConnectError(ctx, req.Spec().Procedure, "", err)
	}

	return connect.NewResponse(&apiv1.ListTermsByCategoryResponse{
		Terms:      toTerms(result.Entries),
		TotalCount: int32(result.TotalCount),
	}), nil
}

// toConnectError classifies a repository or engine error.
// Errors outside the known set become CodeInternal and are logged.
func (h *GlossaryHandler) toConnectError(ctx context.Context, procedure string, term string, err error) error {
	switch {
	case errors.Is(err, glossary.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, fmt.Errorf("term '%s' not found", term))
	case errors.Is(err, glossary.ErrAlreadyExists):
		return connect.NewError(connect.CodeAlreadyExists, fmt.Errorf("term '%s' already exists", term))
	case errors.Is(err, glossary.ErrInvalidPage):
		return connect.NewError(connect.CodeInvalidArgument, err)
	}

	h.logger.ErrorContext(ctx, "internal error", "procedure", procedure, "error", err)
	connectErr := connect.NewError(connect.CodeInternal, err)
	if detail, detailErr := connect.NewErrorDetail(&errdetails.ErrorInfo{
		Reason:   "INTERNAL",
		Domain:   errorDomain,
		Metadata: map[string]string{"procedure": procedure},
	}); detailErr == nil {
		connectErr.AddDetail(detail)
	}
	return connectErr
}

func toTerm(e glossary.Entry) *apiv1.Term {
	related := e.RelatedTerms
	if related == nil {
		related = []string{}
	}
	return &apiv1.Term{
		Term:         e.Term,
		Definition:   e.Definition,
		Category:     e.Category,
		RelatedTerms: related,
		Source:       e.Source,
		CreatedAt:    glossary.FormatTimestamp(e.CreatedAt),
		UpdatedAt:    glossary.FormatTimestamp(e.UpdatedAt),
	}
}

func toTerms(entries []glossary.Entry) []*apiv1.Term {
	terms := make([]*apiv1.Term, 0, len(entries))
	for _, e := range entries {
		terms = append(terms, toTerm(e))
	}
	return terms
}
