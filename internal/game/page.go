package game

// Page is the pagination envelope returned by listing endpoints.
//
// TotalPages, HasNextPage and HasPreviousPage are derived from the three
// stored fields in NewPage and nowhere else, so they cannot drift.
type Page struct {
	Items           []Summary `json:"items"`
	TotalCount      int       `json:"totalCount"`
	Page            int       `json:"page"`
	PageSize        int       `json:"pageSize"`
	TotalPages      int       `json:"totalPages"`
	HasNextPage     bool      `json:"hasNextPage"`
	HasPreviousPage bool      `json:"hasPreviousPage"`
}

// NewPage builds the envelope. page and pageSize are assumed already
// clamped by the transport layer (page >= 1, pageSize >= 1).
func NewPage(items []Summary, totalCount, page, pageSize int) Page {
	if items == nil {
		items = []Summary{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}
	return Page{
		Items:           items,
		TotalCount:      totalCount,
		Page:            page,
		PageSize:        pageSize,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}
