package handlers

import (
	"net/http"
	"strconv"

	"foodgram-backend/internal/auth"
	"foodgram-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RecipeHandler handles HTTP requests for recipe operations
type RecipeHandler struct {
	recipeService service.RecipeServiceInterface
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(recipeService service.RecipeServiceInterface) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
	}
}

// ListRecipes handles GET /recipes
// @Summary List recipes
// @Description Paginated recipes, newest first. Favorite and cart filters only apply to authenticated users.
// @Tags recipes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(6)
// @Param author query int false "Author ID"
// @Param tags query []string false "Tag slugs (any match)" collectionFormat(multi)
// @Param is_favorited query int false "Only favorites (1)"
// @Param is_in_shopping_cart query int false "Only recipes in the shopping cart (1)"
// @Success 200 {object} service.Page[service.RecipeResponse]
// @Failure 400 {object} ErrorResponse "Invalid author"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /recipes [get]
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	query := &service.RecipeListQuery{
		PageRequest:      pageRequest(c),
		Tags:             c.QueryArray("tags"),
		IsFavorited:      queryFlag(c, "is_favorited"),
		IsInShoppingCart: queryFlag(c, "is_in_shopping_cart"),
	}
	if author := c.Query("author"); author != "" {
		id, err := strconv.ParseUint(author, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid author ID", Field: "author"})
			return
		}
		query.AuthorID = uint(id)
	}

	page, err := h.recipeService.List(query, auth.ActorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, withLinks(c, page))
}

// GetRecipe handles GET /recipes/:id
// @Summary Get recipe by ID
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} service.RecipeResponse
// @Failure 400 {object} map[string]interface{} "Invalid recipe ID"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := parseID(c, "id", "recipe")
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetByID(id, auth.ActorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// CreateRecipe handles POST /recipes
// @Summary Create a recipe
// @Description Image is a base64 data URI. Tags and ingredients must be non-empty.
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body service.RecipeWriteRequest true "Recipe data"
// @Success 201 {object} service.RecipeResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 404 {object} map[string]interface{} "Ingredient not found"
// @Security TokenAuth
// @Router /recipes [post]
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req service.RecipeWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), &req, auth.ActorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

// UpdateRecipe handles PATCH /recipes/:id
// @Summary Update a recipe
// @Description Supplied tags or ingredients replace the stored ones. Only the author may update.
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param recipe body service.RecipeWriteRequest true "Recipe data"
// @Success 200 {object} service.RecipeResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 403 {object} map[string]interface{} "Not the author"
// @Failure 404 {object} map[string]interface{} "Recipe or ingredient not found"
// @Security TokenAuth
// @Router /recipes/{id} [patch]
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := parseID(c, "id", "recipe")
	if !ok {
		return
	}

	var req service.RecipeWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	recipe, err := h.recipeService.Update(c.Request.Context(), id, &req, auth.ActorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe handles DELETE /recipes/:id
// @Summary Delete a recipe
// @Tags recipes
// @Param id path int true "Recipe ID"
// @Success 204 "Recipe deleted"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 403 {object} map[string]interface{} "Not the author"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Security TokenAuth
// @Router /recipes/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := parseID(c, "id", "recipe")
	if !ok {
		return
	}

	if err := h.recipeService.Delete(c.Request.Context(), id, auth.ActorFromContext(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
