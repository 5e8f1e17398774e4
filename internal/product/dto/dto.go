package dto

type ProductFilters struct {
	CategoryID  string
	SearchQuery string // name or description search
	SortBy      string // name, price, createdAt
	SortOrder   string // asc, desc
	Page        int
	PageSize    int
}
