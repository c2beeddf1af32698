package response

import "github.com/gin-gonic/gin"

// ErrorBody is the flat error envelope returned by every failing endpoint.
type ErrorBody struct {
	Error string `json:"error"`
}

// AbortError writes the error envelope with the given status code and stops
// the handler chain.
func AbortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: msg})
}
