package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodTracker/internal/tracker"
)

// statusFor maps tracker errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, tracker.ErrInvalidID):
		return http.StatusBadRequest
	case tracker.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err in the format the client negotiated.
// Internal errors are logged and reported without detail.
func respondError(c *gin.Context, err error) {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		log.Printf("request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		msg = "internal error"
	}
	_ = c.Error(err)

	switch c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) {
	case gin.MIMEJSON:
		c.AbortWithStatusJSON(code, gin.H{"error": msg})
	default:
		c.HTML(code, "error.html", gin.H{
			"status":  code,
			"title":   http.StatusText(code),
			"message": msg,
		})
		c.Abort()
	}
}
