package responses

// ResponseDTO is the envelope every endpoint answers with. Meta and Data
// are serialized as null when absent.
type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Meta    *Meta       `json:"meta"`
	Data    interface{} `json:"data"`
}

type Meta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type ErrorResponseDTO struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Error      map[string]string `json:"error,omitempty"`
	DevMessage string            `json:"dev_message,omitempty"`
	Location   interface{}       `json:"location,omitempty"`
}
