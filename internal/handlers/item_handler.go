package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "paisa/internal/errors"
	"paisa/internal/pagination"
	"paisa/internal/services"
)

// ItemHandler handles item-related requests.
type ItemHandler struct {
	itemService  services.ItemServicer
	auditService services.AuditServicer
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(itemService services.ItemServicer, auditService services.AuditServicer) *ItemHandler {
	return &ItemHandler{itemService: itemService, auditService: auditService}
}

// ItemRequest represents the request payload for creating or renaming an item.
type ItemRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// ItemResponse represents an item in the response.
type ItemResponse struct {
	ID     uint   `json:"id"`
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

// CreateItem handles the creation of a new item
// @Summary     Create an item
// @Description Create a new item for the authenticated user. Item names are lower-cased.
// @Tags        items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ItemRequest true "Item details"
// @Success     201 {object} ItemResponse "Item created"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate name"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.itemService.CreateItem(userID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_ITEM", "item", item.ID, c.ClientIP(),
		map[string]interface{}{"name": item.Name})

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// GetUserItems handles the retrieval of items for a user
// @Summary     Get user items
// @Description Get a paginated list of items for the authenticated user
// @Tags        items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Item] "Paginated items"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /items [get]
func (h *ItemHandler) GetUserItems(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.itemService.GetUserItems(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetItemByID handles the retrieval of a specific item for a user
// @Summary     Get item by ID
// @Description Get a specific item by ID for the authenticated user
// @Tags        items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Item ID"
// @Success     200 {object} ItemResponse "Item details"
// @Failure     400 {object} ErrorResponse "Invalid item ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /items/{id} [get]
func (h *ItemHandler) GetItemByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	itemID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	item, err := h.itemService.GetItemByID(userID, itemID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// UpdateItem handles renaming an item.
// @Summary     Update item
// @Description Rename an item for the authenticated user
// @Tags        items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int         true "Item ID"
// @Param       request body ItemRequest true "Updated item details"
// @Success     200 {object} ItemResponse "Updated item"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate name"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /items/{id} [put]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	itemID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.itemService.UpdateItem(userID, itemID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_ITEM", "item", itemID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteItem handles deleting an item.
// @Summary     Delete item
// @Description Delete an item for the authenticated user
// @Tags        items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Item ID"
// @Success     204 "Item deleted"
// @Failure     400 {object} ErrorResponse "Invalid item ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	itemID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.itemService.DeleteItem(userID, itemID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_ITEM", "item", itemID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
