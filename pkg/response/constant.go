package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Processing failure"
	InternalServerErrorCode = 500
	TooManyRequestsCode     = 429
)
