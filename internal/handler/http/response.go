package http

import "github.com/gin-gonic/gin"

// ErrorResponse 输出统一的失败结构 {success:false, error:...}
func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// SuccessResponse 输出统一的成功结构，payload 中补上 success:true
func SuccessResponse(c *gin.Context, code int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(code, body)
}
