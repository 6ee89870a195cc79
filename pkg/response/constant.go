package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong, please try again"
	DefaultErrorCode        = 1
	InternalServerErrorCode = 500

	// DateTimeFormat renders instants as ISO-8601 UTC with milliseconds.
	DateTimeFormat = "2006-01-02T15:04:05.000Z07:00"
)
