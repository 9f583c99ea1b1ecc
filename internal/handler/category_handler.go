package handler

import (
	"quiz-board/internal/dto"
	"quiz-board/internal/service"
	"quiz-board/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	categories service.CategoryService
	validator  *validation.Validator
}

func NewCategoryHandler(categories service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories, validator: validation.NewValidator()}
}

// CreateCategory godoc
// @Summary Create a category
// @Description The authenticated user becomes the category's author
// @Tags category
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /category/create [post]
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return missingUserContext(c)
	}

	var req dto.CreateCategoryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateCreateCategoryRequest(&req); len(errs) > 0 {
		return errs
	}

	category, err := h.categories.CreateCategory(c.UserContext(), userID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// ListCategories godoc
// @Summary List categories
// @Description All filters are optional and combined with AND
// @Tags category
// @Produce json
// @Param userId query string false "Author id"
// @Param name query string false "Exact name"
// @Param slug query string false "Slug"
// @Param categoryId query string false "Category id"
// @Success 200 {array} dto.CategoryResponse
// @Router /category/get [get]
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	var query dto.CategoryQuery
	if err := c.QueryParser(&query); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}
	categories, err := h.categories.ListCategories(c.UserContext(), query)
	if err != nil {
		return err
	}
	return c.JSON(categories)
}
