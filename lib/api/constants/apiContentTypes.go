package constants

const (
	ContentTypeJSON     = "application/json"
	ContentTypeFormData = "application/x-www-form-urlencoded"
)
