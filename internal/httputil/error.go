package httputil

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}
