package constvars

const (
	URLParamID            = "id"
	URLParamAppointmentID = "appointmentId"
)

const (
	URLQueryParamPage          = "page"
	URLQueryParamLimit         = "limit"
	URLQueryParamSortBy        = "sortBy"
	URLQueryParamSortOrder     = "sortOrder"
	URLQueryParamSearchTerm    = "searchTerm"
	URLQueryParamEmail         = "email"
	URLQueryParamContactNumber = "contactNumber"
	URLQueryParamStartDateTime = "startDateTime"
	URLQueryParamEndDateTime   = "endDateTime"
)

const (
	PaginationDefaultPage  = 1
	PaginationDefaultLimit = 10
	PaginationMaxLimit     = 100
	SortOrderAsc           = "asc"
	SortOrderDesc          = "desc"
)
