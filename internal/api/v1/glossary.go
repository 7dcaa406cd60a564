// Package apiv1 defines the request and response messages of glossary.v1.GlossaryService.
package apiv1

// Term is a glossary entry as seen by API callers.
// Timestamps use the fixed-width UTC layout 2006-01-02T15:04:05.000000Z.
type Term struct {
	Term         string   `json:"term"`
	Definition   string   `json:"definition"`
	Category     string   `json:"category"`
	RelatedTerms []string `json:"related_terms"`
	Source       string   `json:"source"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

func (x *Term) GetTerm() string {
	if x == nil {
		return ""
	}
	return x.Term
}

func (x *Term) GetDefinition() string {
	if x == nil {
		return ""
	}
	return x.Definition
}

func (x *Term) GetCategory() string {
	if x == nil {
		return ""
	}
	return x.Category
}

func (x *Term) GetRelatedTerms() []string {
	if x == nil {
		return nil
	}
	return x.RelatedTerms
}

type GetTermRequest struct {
	Term string `json:"term" validate:"required"`
}

type GetTermResponse struct {
	Term *Term `json:"term"`
}

func (x *GetTermResponse) GetTerm() *Term {
	if x == nil {
		return nil
	}
	return x.Term
}

type AddTermRequest struct {
	Term         string   `json:"term" validate:"required"`
	Definition   string   `json:"definition" validate:"required"`
	Category     string   `json:"category" validate:"required"`
	RelatedTerms []string `json:"related_terms,omitempty"`
	Source       string   `json:"source,omitempty"`
}

type AddTermResponse struct {
	Term    *Term  `json:"term"`
	Message string `json:"message"`
}

func (x *AddTermResponse) GetTerm() *Term {
	if x == nil {
		return nil
	}
	return x.Term
}

func (x *AddTermResponse) GetMessage() string {
	if x == nil {
		return ""
	}
	return x.Message
}

// UpdateTermRequest changes only the fields that are set.
// An absent related_terms keeps the prior list; an empty one clears it.
type UpdateTermRequest struct {
	Term         string    `json:"term" validate:"required"`
	Definition   *string   `json:"definition,omitempty" validate:"omitnil,min=1"`
	Category     *string   `json:"category,omitempty" validate:"omitnil,min=1"`
	RelatedTerms *[]string `json:"related_terms,omitempty"`
	Source       *string   `json:"source,omitempty"`
}

type UpdateTermResponse struct {
	Term    *Term  `json:"term"`
	Message string `json:"message"`
}

func (x *UpdateTermResponse) GetTerm() *Term {
	if x == nil {
		return nil
	}
	return x.Term
}

func (x *UpdateTermResponse) GetMessage() string {
	if x == nil {
		return ""
	}
	return x.Message
}

type DeleteTermRequest struct {
	Term string `json:"term" validate:"required"`
}

type DeleteTermResponse struct {
	Message string `json:"message"`
}

func (x *DeleteTermResponse) GetMessage() string {
	if x == nil {
		return ""
	}
	return x.Message
}

// ListTermsRequest asks for one page of the store in insertion order.
// Page and PageSize are both required: an omitted or zero value is rejected
// with InvalidArgument rather than defaulted. A page past the end is empty.
type ListTermsRequest struct {
	Page     int32 `json:"page" validate:"min=1"`
	PageSize int32 `json:"page_size" validate:"min=1"`
}

type ListTermsResponse struct {
	Terms      []*Term `json:"terms"`
	TotalCount int32   `json:"total_count"`
}

func (x *ListTermsResponse) GetTerms() []*Term {
	if x == nil {
		return nil
	}
	return x.Terms
}

func (x *ListTermsResponse) GetTotalCount() int32 {
	if x == nil {
		return 0
	}
	return x.TotalCount
}

type SearchTermsRequest struct {
	Query    string `json:"query" validate:"required"`
	Category string `json:"category,omitempty"`
}

type SearchTermsResponse struct {
	Terms      []*Term `json:"terms"`
	TotalCount int32   `json:"total_count"`
}

func (x *SearchTermsResponse) GetTerms() []*Term {
	if x == nil {
		return nil
	}
	return x.Terms
}

func (x *SearchTermsResponse) GetTotalCount() int32 {
	if x == nil {
		return 0
	}
	return x.TotalCount
}

type ListTermsByCategoryRequest struct {
	Category string `json:"category"`
}

type ListTermsByCategoryResponse struct {
	Terms      []*Term `json:"terms"`
	TotalCount int32   `json:"total_count"`
}

func (x *ListTermsByCategoryResponse) GetTerms() []*Term {
	if x == nil {
		return nil
	}
	return x.Terms
}

func (x *ListTermsByCategoryResponse) GetTotalCount() int32 {
	if x == nil {
		return 0
	}
	return x.TotalCount
}
