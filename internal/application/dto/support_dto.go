package dto

// ChatRequest a message typed into the support chat widget.
type ChatRequest struct {
	Message string `json:"message" form:"message"`
}

// ChatResponse the widget's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ThemeRequest the theme preference toggle.
type ThemeRequest struct {
	Theme string `json:"theme" form:"theme"`
}
