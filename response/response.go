package response

import (
	"net/http"

	apperrors "hostel/errors"
	"hostel/services/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse định nghĩa cấu trúc response lỗi
type ErrorResponse struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// MessageResponse dùng cho các thao tác xóa
type MessageResponse struct {
	Message string `json:"message"`
}

// Success trả về response thành công, dữ liệu giữ nguyên dạng phẳng
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message trả về response xác nhận đơn giản
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// Error ánh xạ lỗi của service sang HTTP status và body tương ứng.
// Lỗi 5xx được log đầy đủ, client chỉ nhận thông báo chung.
func Error(c *gin.Context, log logger.Logger, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		code := string(apperrors.ErrCodeDBError)
		if appErr := apperrors.GetAppError(err); appErr != nil {
			code = string(appErr.Code)
		}
		log.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		ServerError(c, code)
		return
	}

	appErr := apperrors.GetAppError(err)
	c.JSON(status, ErrorResponse{
		Code:   string(appErr.Code),
		Detail: appErr.Message,
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context, code string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:   code,
		Detail: "Internal server error",
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:   string(apperrors.ErrCodeValidation),
		Detail: message,
	})
}
