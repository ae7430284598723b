package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"item-api/internal/repository"
	"item-api/internal/service"

	"github.com/gin-gonic/gin"
)

// User-facing messages; these are part of the API contract.
const (
	msgItemNotFound  = "Item not found"
	msgFieldsNeeded  = "Name and description are required"
	msgNoUpdateData  = "No data provided for update"
	msgItemCreated   = "Item created successfully"
	msgItemUpdated   = "Item updated successfully"
	msgItemDeleted   = "Item deleted successfully"
	msgInternalError = "Internal server error"
)

// itemRequest is shared by create and update. Absent and empty fields are
// equivalent; update treats the empty string as "leave unchanged".
type itemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// itemID parses the :id path parameter. A non-numeric id cannot match any
// item, so it reports not-found rather than a validation error.
func (h *Handler) itemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": msgItemNotFound})
		return 0, false
	}
	return id, true
}

// @Summary      List all items
// @Tags         items
// @Produce      json
// @Success      200  {array}   models.Item
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /items [get]
// @Security     BearerAuth
func (h *Handler) listItems(c *gin.Context) {
	ident := identityFrom(c)
	if h.log != nil {
		h.log.Infow("items_listed", "username", ident.Username)
	}
	c.JSON(http.StatusOK, h.services.Items.List(c.Request.Context()))
}

// @Summary      Get a single item
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  models.Item
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /items/{id} [get]
// @Security     BearerAuth
func (h *Handler) getItem(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}
	item, err := h.services.Items.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": msgItemNotFound})
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary      Create an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body   itemRequest  true  "Item payload"
// @Success      201   {object}  map[string]interface{}  "message, item"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /items [post]
// @Security     BearerAuth
func (h *Handler) createItem(c *gin.Context) {
	ident := identityFrom(c)

	var req itemRequest
	// An unusable body counts as "no fields supplied" and falls into the
	// required-fields error below. The auth gate has already run.
	_ = c.ShouldBindJSON(&req)

	item, err := h.services.Items.Create(c.Request.Context(), ident, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgFieldsNeeded})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternalError, "item_create_failed", err)
		return
	}

	if h.log != nil {
		h.log.Infow("item_created", "username", ident.Username, "id", item.ID, "name", item.Name)
	}
	c.JSON(http.StatusCreated, gin.H{"message": msgItemCreated, "item": item})
}

// @Summary      Update an item
// @Description  Partial update; omitted or empty fields keep their value
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path   int          true  "Item ID"
// @Param        body  body   itemRequest  true  "Fields to update"
// @Success      200   {object}  map[string]interface{}  "message, item"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /items/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateItem(c *gin.Context) {
	ident := identityFrom(c)

	id, ok := h.itemID(c)
	if !ok {
		return
	}

	var req itemRequest
	_ = c.ShouldBindJSON(&req)

	item, err := h.services.Items.Update(c.Request.Context(), ident, id, req.Name, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": msgItemNotFound})
		case errors.Is(err, repository.ErrEmptyUpdate):
			c.JSON(http.StatusBadRequest, gin.H{"message": msgNoUpdateData})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, msgInternalError, "item_update_failed", err, "id", id)
		}
		return
	}

	if h.log != nil {
		h.log.Infow("item_updated", "username", ident.Username, "id", item.ID)
	}
	c.JSON(http.StatusOK, gin.H{"message": msgItemUpdated, "item": item})
}

// @Summary      Delete an item
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /items/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteItem(c *gin.Context) {
	ident := identityFrom(c)

	id, ok := h.itemID(c)
	if !ok {
		return
	}

	if err := h.services.Items.Delete(c.Request.Context(), ident, id); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgItemNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternalError, "item_delete_failed", err, "id", id)
		return
	}

	if h.log != nil {
		h.log.Infow("item_deleted", "username", ident.Username, "id", id)
	}
	c.JSON(http.StatusOK, gin.H{"message": msgItemDeleted})
}

// logAndJSONError logs the underlying error and answers with a generic body.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"message": userMsg})
}
