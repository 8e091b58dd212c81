package response

// ErrorBody is the error member of a failed response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Meta accompanies every API response.
type Meta struct {
	RequestID string `json:"request_id"`
	Locale    string `json:"locale,omitempty"`
}

// DataEnvelope wraps successful payloads as {data, meta}.
type DataEnvelope struct {
	Data any   `json:"data"`
	Meta *Meta `json:"meta"`
}

// ErrorEnvelope wraps failures as {error, meta}.
type ErrorEnvelope struct {
	Error *ErrorBody `json:"error"`
	Meta  *Meta      `json:"meta"`
}
