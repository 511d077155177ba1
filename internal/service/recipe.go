package service

import (
	"context"
	"fmt"
	"strings"

	"foodgram-backend/internal/auth"
	"foodgram-backend/internal/database/models"
	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/logger"
	"foodgram-backend/internal/metrics"
	"foodgram-backend/internal/repository"
	"foodgram-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RecipeService provides recipe-related business logic
type RecipeService struct {
	recipes     repository.RecipeRepositoryInterface
	tags        repository.TagRepositoryInterface
	ingredients repository.IngredientRepositoryInterface
	images      storage.ImageStore
	projector   *Projector
	validator   *validator.Validate
	pageSize    int
}

// Ensure RecipeService implements RecipeServiceInterface
var _ RecipeServiceInterface = (*RecipeService)(nil)

// NewRecipeService creates a new RecipeService
func NewRecipeService(
	recipes repository.RecipeRepositoryInterface,
	tags repository.TagRepositoryInterface,
	ingredients repository.IngredientRepositoryInterface,
	images storage.ImageStore,
	projector *Projector,
	validator *validator.Validate,
	pageSize int,
) *RecipeService {
	return &RecipeService{
		recipes:     recipes,
		tags:        tags,
		ingredients: ingredients,
		images:      images,
		projector:   projector,
		validator:   validator,
		pageSize:    pageSize,
	}
}

// RecipeIngredientInput is one {id, amount} pair of a recipe payload
type RecipeIngredientInput struct {
	ID     uint `json:"id" validate:"required"`
	Amount int  `json:"amount" validate:"min=1,max=32000"`
}

// RecipeWriteRequest is the create and update payload. A nil Tags or
// Ingredients slice means the key was absent from the JSON body.
type RecipeWriteRequest struct {
	Name        string                  `json:"name" validate:"max=200"`
	Text        string                  `json:"text"`
	CookingTime int                     `json:"cooking_time" validate:"min=1,max=32000"`
	Image       string                  `json:"image"`
	Tags        []uint                  `json:"tags"`
	Ingredients []RecipeIngredientInput `json:"ingredients" validate:"dive"`
}

// RecipeListQuery holds listing filters and pagination
type RecipeListQuery struct {
	PageRequest
	AuthorID         uint
	Tags             []string
	IsFavorited      bool
	IsInShoppingCart bool
}

// Create validates the payload, stores the image and persists the recipe
// with its tags and ingredient rows for actor
func (s *RecipeService) Create(ctx context.Context, req *RecipeWriteRequest, actor auth.Actor) (*RecipeResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, apperrors.ErrCredentialsNotProvided
	}

	tagIDs, rows, err := s.validateWrite(req, true)
	if err != nil {
		return nil, err
	}

	image, err := DecodeImage(req.Image)
	if err != nil {
		return nil, err
	}
	imageURL, err := s.storeImage(ctx, image)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		AuthorID:    actor.ID,
		Name:        strings.TrimSpace(req.Name),
		Image:       imageURL,
		Text:        strings.TrimSpace(req.Text),
		CookingTime: req.CookingTime,
	}
	if err := s.recipes.Create(recipe, tagIDs, rows); err != nil {
		s.discardImage(ctx, imageURL, actor)
		return nil, writeError("create recipe", err)
	}

	metrics.RecordRecipeWrite("create")
	logger.ForActor(actor).WithField("recipe_id", recipe.ID).Info("recipe created")

	return s.GetByID(recipe.ID, actor)
}

// Update rewrites an existing recipe. Only the author may update it.
// Supplied tags or ingredients fully replace the stored ones.
func (s *RecipeService) Update(ctx context.Context, id uint, req *RecipeWriteRequest, actor auth.Actor) (*RecipeResponse, error) {
	existing, err := s.loadOwned(id, actor)
	if err != nil {
		return nil, err
	}

	tagIDs, rows, err := s.validateWrite(req, false)
	if err != nil {
		return nil, err
	}

	imageURL := existing.Image
	replacedImage := false
	if strings.TrimSpace(req.Image) != "" {
		image, err := DecodeImage(req.Image)
		if err != nil {
			return nil, err
		}
		if imageURL, err = s.storeImage(ctx, image); err != nil {
			return nil, err
		}
		replacedImage = true
	}

	recipe := &models.Recipe{
		BaseModel:   models.BaseModel{ID: existing.ID},
		AuthorID:    existing.AuthorID,
		Name:        strings.TrimSpace(req.Name),
		Image:       imageURL,
		Text:        strings.TrimSpace(req.Text),
		CookingTime: req.CookingTime,
	}
	if err := s.recipes.Update(recipe, tagIDs, rows); err != nil {
		if replacedImage {
			s.discardImage(ctx, imageURL, actor)
		}
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, writeError("update recipe", err)
	}
	if replacedImage {
		s.discardImage(ctx, existing.Image, actor)
	}

	metrics.RecordRecipeWrite("update")
	logger.ForActor(actor).WithField("recipe_id", id).Info("recipe updated")

	return s.GetByID(id, actor)
}

// GetByID renders one recipe for actor
func (s *RecipeService) GetByID(id uint, actor auth.Actor) (*RecipeResponse, error) {
	recipe, err := s.load(id)
	if err != nil {
		return nil, err
	}
	return s.projector.Recipe(recipe, actor)
}

// List returns one page of recipes, newest first. The favorite and cart
// filters only apply to authenticated actors.
func (s *RecipeService) List(query *RecipeListQuery, actor auth.Actor) (*Page[RecipeResponse], error) {
	filter := repository.RecipeFilter{
		AuthorID: query.AuthorID,
		TagSlugs: query.Tags,
	}
	if actor.IsAuthenticated() {
		if query.IsFavorited {
			filter.FavoritedBy = actor.ID
		}
		if query.IsInShoppingCart {
			filter.InCartOf = actor.ID
		}
	}

	page, limit, offset := query.PageRequest.normalize(s.pageSize)
	recipes, total, err := s.recipes.List(filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	results := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		response, err := s.projector.Recipe(&recipes[i], actor)
		if err != nil {
			return nil, err
		}
		results = append(results, *response)
	}

	return newPage(page, total, results), nil
}

// Delete removes a recipe and its image. Only the author may delete it.
func (s *RecipeService) Delete(ctx context.Context, id uint, actor auth.Actor) error {
	existing, err := s.loadOwned(id, actor)
	if err != nil {
		return err
	}

	if err := s.recipes.Delete(id); err != nil {
		if repository.IsNotFound(err) {
			return apperrors.ErrRecipeNotFound
		}
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	s.discardImage(ctx, existing.Image, actor)

	metrics.RecordRecipeWrite("delete")
	logger.ForActor(actor).WithField("recipe_id", id).Info("recipe deleted")
	return nil
}

// validateWrite checks the payload and resolves tags and ingredients.
// On update a nil slice is returned for each list the payload left out.
func (s *RecipeService) validateWrite(req *RecipeWriteRequest, creating bool) ([]uint, []models.RecipeIngredient, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, nil, apperrors.NewValidationError("name", "this field is required")
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, nil, apperrors.NewValidationError("text", "this field is required")
	}
	if req.CookingTime == 0 {
		return nil, nil, apperrors.NewValidationError("cooking_time", "this field is required")
	}

	if req.Tags == nil && creating {
		return nil, nil, apperrors.NewValidationError("tags", "this field is required")
	}
	if req.Tags != nil && len(req.Tags) == 0 {
		return nil, nil, apperrors.NewValidationError("tags", "at least one tag is required")
	}

	if req.Ingredients == nil && creating {
		return nil, nil, apperrors.NewValidationError("ingredients", "this field is required")
	}
	if req.Ingredients != nil {
		if len(req.Ingredients) == 0 {
			return nil, nil, apperrors.NewValidationError("ingredients", "at least one ingredient is required")
		}
		seen := make(map[uint]struct{}, len(req.Ingredients))
		for _, item := range req.Ingredients {
			seen[item.ID] = struct{}{}
		}
		if len(seen) != len(req.Ingredients) {
			return nil, nil, apperrors.NewValidationError("ingredients", "ingredients must not repeat")
		}
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, nil, validationError(err)
	}

	var tagIDs []uint
	if req.Tags != nil {
		resolved, err := s.resolveTags(req.Tags)
		if err != nil {
			return nil, nil, err
		}
		tagIDs = resolved
	}

	var rows []models.RecipeIngredient
	if req.Ingredients != nil {
		resolved, err := s.resolveIngredients(req.Ingredients)
		if err != nil {
			return nil, nil, err
		}
		rows = resolved
	}

	return tagIDs, rows, nil
}

func (s *RecipeService) resolveTags(ids []uint) ([]uint, error) {
	unique := make([]uint, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	tags, err := s.tags.GetByIDs(unique)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	found := make(map[uint]struct{}, len(tags))
	for _, tag := range tags {
		found[tag.ID] = struct{}{}
	}
	for _, id := range unique {
		if _, ok := found[id]; !ok {
			return nil, apperrors.NewValidationError("tags", fmt.Sprintf("tag %d does not exist", id))
		}
	}
	return unique, nil
}

func (s *RecipeService) resolveIngredients(items []RecipeIngredientInput) ([]models.RecipeIngredient, error) {
	ids := make([]uint, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	ingredients, err := s.ingredients.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get ingredients: %w", err)
	}
	found := make(map[uint]struct{}, len(ingredients))
	for _, ingredient := range ingredients {
		found[ingredient.ID] = struct{}{}
	}

	rows := make([]models.RecipeIngredient, len(items))
	for i, item := range items {
		if _, ok := found[item.ID]; !ok {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("ingredient %d", item.ID))
		}
		rows[i] = models.RecipeIngredient{IngredientID: item.ID, Amount: item.Amount}
	}
	return rows, nil
}

func (s *RecipeService) load(id uint) (*models.Recipe, error) {
	recipe, err := s.recipes.GetByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return recipe, nil
}

func (s *RecipeService) loadOwned(id uint, actor auth.Actor) (*models.Recipe, error) {
	if !actor.IsAuthenticated() {
		return nil, apperrors.ErrCredentialsNotProvided
	}
	recipe, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != actor.ID {
		return nil, apperrors.ErrNotRecipeAuthor
	}
	return recipe, nil
}

func (s *RecipeService) storeImage(ctx context.Context, image *DecodedImage) (string, error) {
	name := "recipes/" + uuid.NewString() + image.Extension
	url, err := s.images.Save(ctx, name, image.Data, image.ContentType)
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	return url, nil
}

// discardImage removes an image that is no longer referenced. Failures are
// logged only; the recipe write already succeeded or failed on its own.
func (s *RecipeService) discardImage(ctx context.Context, url string, actor auth.Actor) {
	if url == "" {
		return
	}
	if err := s.images.Delete(ctx, url); err != nil {
		logger.ForActor(actor).WithError(err).WithField("image", url).Warn("failed to delete recipe image")
	}
}

func writeError(action string, err error) error {
	if repository.IsUniqueViolation(err) {
		return apperrors.NewValidationError("ingredients", "ingredients must not repeat")
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
