package utils

import "github.com/gin-gonic/gin"

// OK writes a success response: {"success": true, ...fields}. Extra fields
// are merged at the top level, matching the client contract.
func OK(ctx *gin.Context, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	ctx.JSON(200, body)
}

// OKStatus is OK with an explicit HTTP status code.
func OKStatus(ctx *gin.Context, status int, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	ctx.JSON(status, body)
}

// Fail writes a failure response: {"success": false, "message": ...}.
func Fail(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"success": false, "message": message})
}
