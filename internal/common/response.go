package common

import "github.com/gin-gonic/gin"

func OK(c *gin.Context, data any) {
	c.JSON(200, gin.H{"data": data})
}

func Fail(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{"error": msg})
}

func FailDetails(c *gin.Context, httpStatus int, msg, details string) {
	c.JSON(httpStatus, gin.H{"error": msg, "details": details})
}
