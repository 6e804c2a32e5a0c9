package errors

var InvalidRequestError = Error{
	Message: "Invalid request",
	Error:   400,
}

func NewInvalidParamError(paramName string) Error {
	return Error{
		Message: "Invalid parameter: " + paramName,
		Error:   400,
	}
}

func NewMissingParamError(paramName string) Error {
	return Error{
		Message: "Missing parameter: " + paramName,
		Error:   400,
	}
}

var UnknownActionError = Error{
	Message: "Unknown action",
	Error:   400,
}

var NotAjaxRequestError = Error{
	Message: "Expected an asynchronous request",
	Error:   400,
}

var DocumentNotFoundError = Error{
	Message: "Document not found",
	Error:   404,
}

var RevisionNotFoundError = Error{
	Message: "Revision not found",
	Error:   404,
}

var AuthorNotFoundError = Error{
	Message: "Author not found",
	Error:   404,
}

var InternalServerError = Error{
	Message: "Internal server error",
	Error:   500,
}

var ValidationError = Error{
	Message: "Validation failed",
	Error:   422,
}
