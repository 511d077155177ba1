package handlers

import (
	"net/http"

	"foodgram-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TagHandler handles HTTP requests for tags
type TagHandler struct {
	tagService service.TagServiceInterface
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tagService service.TagServiceInterface) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// ListTags handles GET /tags
// @Summary List tags
// @Tags tags
// @Produce json
// @Success 200 {array} service.TagResponse
// @Router /tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// GetTag handles GET /tags/:id
// @Summary Get tag by ID
// @Tags tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} service.TagResponse
// @Failure 404 {object} map[string]interface{} "Tag not found"
// @Router /tags/{id} [get]
func (h *TagHandler) GetTag(c *gin.Context) {
	id, ok := parseID(c, "id", "tag")
	if !ok {
		return
	}

	tag, err := h.tagService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}
