package service

import "github.com/ledgerly/ledgerly-backend/internal/domain"

// CategoryService handles category-related business logic
type CategoryService struct {
	categoryRepo domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// GetCategories returns all categories owned by the user
func (s *CategoryService) GetCategories(userID int32) ([]*domain.Category, error) {
	return s.categoryRepo.GetByUser(userID)
}
