package res

import "github.com/gofiber/fiber/v2/utils"

type ErrorResponse struct {
	Status     string      `json:"status"`
	StatusCode int         `json:"status_code"`
	Error      interface{} `json:"error"`
}

// NewErrorResponse fills Status with the standard reason phrase for statusCode.
func NewErrorResponse(statusCode int, err interface{}) ErrorResponse {
	return ErrorResponse{
		Status:     utils.StatusMessage(statusCode),
		StatusCode: statusCode,
		Error:      err,
	}
}
