package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/mo"

	"foodTracker/internal/auth"
	"foodTracker/internal/tracker"
	"foodTracker/models"
)

const foodConsumedField = "food_consumed"

type handlers struct {
	tracker *tracker.Service
}

// userHandler is a handler that receives the authenticated user explicitly.
type userHandler func(c *gin.Context, user *models.User)

func withUser(h userHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := auth.CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
			return
		}
		h(c, u)
	}
}

// index renders the catalog and the user's history, recording a submitted food first.
func (h *handlers) index(c *gin.Context, user *models.User) {
	submission := mo.None[string]()
	if c.Request.Method == http.MethodPost {
		if raw, ok := c.GetPostForm(foodConsumedField); ok {
			submission = mo.Some(raw)
		}
	}

	view, err := h.tracker.Index(c.Request.Context(), user, submission)
	if err != nil {
		respondError(c, err)
		return
	}

	switch c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) {
	case gin.MIMEJSON:
		c.JSON(http.StatusOK, view)
	default:
		c.HTML(http.StatusOK, "index.html", gin.H{
			"foods":          view.Foods,
			"consumed_foods": view.ConsumedFoods,
		})
	}
}

// remove deletes one of the user's records and sends the caller back to the index.
func (h *handlers) remove(c *gin.Context, user *models.User) {
	if err := h.tracker.Remove(c.Request.Context(), user, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
