package service

import (
	"foodgram-backend/internal/auth"
	"foodgram-backend/internal/database/models"
)

// AssociationLookup reports whether userID is linked to targetID
// (subscribed to an author, favorited or carted a recipe)
type AssociationLookup interface {
	Exists(userID, targetID uint) (bool, error)
}

// RecipeCounter counts the recipes of an author
type RecipeCounter interface {
	CountByAuthor(authorID uint) (int64, error)
}

// AuthorRecipeLister lists an author's recipes newest first
type AuthorRecipeLister interface {
	GetByAuthor(authorID uint, limit int) ([]models.Recipe, error)
}

// IsSubscribed is false for anonymous actors and for an actor looking at itself
func IsSubscribed(lookup AssociationLookup, subjectID uint, actor auth.Actor) (bool, error) {
	if !actor.IsAuthenticated() || actor.ID == subjectID {
		return false, nil
	}
	return lookup.Exists(actor.ID, subjectID)
}

// IsFavorited is false for anonymous actors
func IsFavorited(lookup AssociationLookup, recipeID uint, actor auth.Actor) (bool, error) {
	return linked(lookup, recipeID, actor)
}

// IsInShoppingCart is false for anonymous actors
func IsInShoppingCart(lookup AssociationLookup, recipeID uint, actor auth.Actor) (bool, error) {
	return linked(lookup, recipeID, actor)
}

// RecipesCount returns how many recipes subjectID authored
func RecipesCount(counter RecipeCounter, subjectID uint) (int64, error) {
	return counter.CountByAuthor(subjectID)
}

// AuthorRecipes returns subjectID's recipes, truncated to limit when limit > 0
func AuthorRecipes(lister AuthorRecipeLister, subjectID uint, limit int) ([]models.Recipe, error) {
	if limit < 0 {
		limit = 0
	}
	return lister.GetByAuthor(subjectID, limit)
}

func linked(lookup AssociationLookup, targetID uint, actor auth.Actor) (bool, error) {
	if !actor.IsAuthenticated() {
		return false, nil
	}
	return lookup.Exists(actor.ID, targetID)
}
