package response

// Resp is the JSON envelope for errors and system endpoints.
// Webhook successes are written bare.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
