package requests

type Pagination struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Offset is the number of rows skipped for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

type PatientFilters struct {
	SearchTerm string
	Email      string
}

type AdminFilters struct {
	SearchTerm    string
	Email         string
	ContactNumber string
}
