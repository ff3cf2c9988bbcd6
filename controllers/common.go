package controllers

import (
	"strconv"

	"hostel/middleware"
	"hostel/response"
	"hostel/services/logger"
	"hostel/validator"

	"github.com/gin-gonic/gin"
)

// parseID đọc :id, trả về false và đã ghi response 400 nếu không hợp lệ
func parseID(c *gin.Context) (uint, bool) {
	// id lưu dưới dạng số nguyên có dấu 64 bit trong DB
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil || id == 0 {
		response.BadRequest(c, "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// bindJSON bind body vào req, lỗi validate được trả về dạng 400
func bindJSON(c *gin.Context, log logger.Logger, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		fail(c, log, validator.FromBindingError(err))
		return false
	}
	return true
}

func fail(c *gin.Context, log logger.Logger, err error) {
	response.Error(c, middleware.Logger(c, log), err)
}
