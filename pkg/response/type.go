package response

// ErrorResp is the JSON body written for every failed request.
type ErrorResp struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

const (
	// CodeInvalidInput is used when the request body or query fails binding.
	CodeInvalidInput = "invalid_input"
	// DefaultErrorMessage is shown to clients for unexpected failures.
	DefaultErrorMessage = "Вътрешна грешка. Моля, опитайте отново."
)
