package dto

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NoticeResponse carries a user-visible notice for an action that
// succeeded (the storefront equivalent of the old alert() calls).
type NoticeResponse struct {
	Notice string `json:"notice"`
}
