package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/piskorekkevin-afk/essenstracker/services"
)

// FlashCookie carries one user-visible notice across a redirect for
// interactive clients.
const FlashCookie = "flash"

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// wantsJSON reports whether the caller declared a programmatic
// preference. Interactive form posts get redirects instead.
func wantsJSON(c *gin.Context) bool {
	return c.GetHeader("Accept") == "application/json"
}

func flashRedirect(c *gin.Context, target, notice string) {
	c.SetCookie(FlashCookie, notice, 10, "/", "", false, false)
	c.Redirect(http.StatusSeeOther, target)
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// respondOwnership maps the service ownership errors to the API's
// 404-before-403 convention.
func respondOwnership(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
