package dto

// ChatRequest carries one visitor message from the chat widget.
type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
