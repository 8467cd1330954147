package res

// CommonResponse wraps every successful payload. Acknowledgements without a
// payload use CommonResponse[any] and send a null data field.
type CommonResponse[T any] struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Data       T      `json:"data"`
}
