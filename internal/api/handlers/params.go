package handlers

import (
	"net/http"
	"strconv"

	"foodgram-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// parseID reads a positive integer path parameter, answering 400 otherwise
func parseID(c *gin.Context, name, entity string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + entity + " ID"})
		return 0, false
	}
	return uint(id), true
}

// queryInt reads an integer query parameter, falling back to def
func queryInt(c *gin.Context, name string, def int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return value
}

// queryFlag treats "1" and "true" as set
func queryFlag(c *gin.Context, name string) bool {
	switch c.Query(name) {
	case "1", "true", "True":
		return true
	default:
		return false
	}
}

func pageRequest(c *gin.Context) service.PageRequest {
	return service.PageRequest{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 0),
	}
}

// withLinks fills in absolute next/previous URLs for a page
func withLinks[T any](c *gin.Context, page *service.Page[T]) *service.Page[T] {
	if page.HasNext() {
		page.Next = pageLink(c, page.PageNumber+1)
	}
	if page.HasPrevious() {
		page.Previous = pageLink(c, page.PageNumber-1)
	}
	return page
}

func pageLink(c *gin.Context, page int) *string {
	u := *c.Request.URL
	query := u.Query()
	if page <= 1 {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = query.Encode()
	u.Host = c.Request.Host
	u.Scheme = "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		u.Scheme = "https"
	}
	link := u.String()
	return &link
}
