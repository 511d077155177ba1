package handlers

import (
	"net/http"

	"foodgram-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// IngredientHandler handles HTTP requests for ingredients
type IngredientHandler struct {
	ingredientService service.IngredientServiceInterface
}

// NewIngredientHandler creates a new ingredient handler
func NewIngredientHandler(ingredientService service.IngredientServiceInterface) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

// ListIngredients handles GET /ingredients
// @Summary Search ingredients
// @Description Case-insensitive name prefix search. Not paginated.
// @Tags ingredients
// @Produce json
// @Param name query string false "Name prefix"
// @Success 200 {array} service.IngredientResponse
// @Router /ingredients [get]
func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.ingredientService.Search(c.Query("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

// GetIngredient handles GET /ingredients/:id
// @Summary Get ingredient by ID
// @Tags ingredients
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} service.IngredientResponse
// @Failure 404 {object} map[string]interface{} "Ingredient not found"
// @Router /ingredients/{id} [get]
func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	id, ok := parseID(c, "id", "ingredient")
	if !ok {
		return
	}

	ingredient, err := h.ingredientService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}
