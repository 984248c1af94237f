package rest

import "github.com/gin-gonic/gin"

// errorBody is the {"error": "..."} shape every failure uses.
type errorBody struct {
	Error string `json:"error"`
}

func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, errorBody{Error: msg})
}
