package errors

// Error is the JSON body of a failed API request.
type Error struct {
	Message string `json:"message" example:"Document not found"`
	Error   int    `json:"error" example:"404"`
}
