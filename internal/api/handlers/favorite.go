package handlers

import (
	"net/http"

	"foodgram-backend/internal/auth"
	"foodgram-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const shoppingListFilename = "shopping_list.txt"

// FavoriteHandler handles favorites and the shopping cart
type FavoriteHandler struct {
	favoriteService service.FavoriteServiceInterface
	cartService     service.ShoppingCartServiceInterface
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(favoriteService service.FavoriteServiceInterface, cartService service.ShoppingCartServiceInterface) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
		cartService:     cartService,
	}
}

// AddFavorite handles POST /recipes/:id/favorite
// @Summary Add a recipe to favorites
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} service.RecipeMinifiedResponse
// @Failure 400 {object} map[string]interface{} "Already in favorites"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Security TokenAuth
// @Router /recipes/{id}/favorite [post]
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	id, ok := parseID(c, "id", "recipe")
	if !ok {
		return
	}

	recipe, err := h.favoriteService.Add(id, auth.ActorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

// RemoveFavorite handles DELETE /recipes/:id/favorite
// @Summary Remove a recipe from favorites
// @Tags recipes
// @Param id path int true "Recipe ID"
// @Success 204 "Removed"
// @Failure 400 {object} ErrorResponse "Not in favorites"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Security TokenAuth
// @Router /recipes/{id}/favorite [delete]
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	id, ok := parseID(c, "id", "recipe")
	if !ok {
		return
	}

	if err := h.favoriteService.Remove(id, auth.ActorFromContext(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddToShoppingCart handles POST /recipes/:id/shopping_cart
// @Summary Add a recipe to the shopping cart
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} service.RecipeMinifiedResponse
// @Failure 400 {object} map[string]interface{} "Already in the shopping cart"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Security TokenAuth
// @Router /recipes/{id}/shopping_cart [post]
func (h *FavoriteHandler) AddToShoppingCart(c *gin.Context) {
	id, ok := parseID(c, "id", "recipe")
	if !ok {
		return
	}

	recipe, err := h.cartService.Add(id, auth.ActorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

// RemoveFromShoppingCart handles DELETE /recipes/:id/shopping_cart
// @Summary Remove a recipe from the shopping cart
// @Tags recipes
// @Param id path int true "Recipe ID"
// @Success 204 "Removed"
// @Failure 400 {object} ErrorResponse "Not in the shopping cart"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Security TokenAuth
// @Router /recipes/{id}/shopping_cart [delete]
func (h *FavoriteHandler) RemoveFromShoppingCart(c *gin.Context) {
	id, ok := parseID(c, "id", "recipe")
	if !ok {
		return
	}

	if err := h.cartService.Remove(id, auth.ActorFromContext(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DownloadShoppingCart handles GET /recipes/download_shopping_cart
// @Summary Download the shopping list
// @Description Ingredients of every recipe in the cart, summed per name and unit
// @Tags recipes
// @Produce plain
// @Success 200 {string} string "shopping_list.txt"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security TokenAuth
// @Router /recipes/download_shopping_cart [get]
func (h *FavoriteHandler) DownloadShoppingCart(c *gin.Context) {
	data, err := h.cartService.ShoppingList(auth.ActorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+shoppingListFilename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", data)
}
