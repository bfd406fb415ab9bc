package handlers

import (
	"errors"
	"net/http"

	"gallery_users/internal/repository"
	"gallery_users/internal/service"

	"github.com/gin-gonic/gin"
)

const errMissingItemID = "missing item id in path"

// Centralized error logging and response for collection routes.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// collectionErrStatus maps domain failures to one status per error kind.
func collectionErrStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrCollectionFull):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondCollectionErr writes the mapped status; store failures get a generic
// message so query detail never reaches the client.
func (h *Handler) respondCollectionErr(c *gin.Context, logKey string, err error, kv ...interface{}) {
	status := collectionErrStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "collection operation failed"
	}
	h.logAndJSONError(c, status, msg, logKey, err, kv...)
}

// @Summary      List a collection
// @Description  Returns the caller's favourites or history in insertion order.
// @Tags         collections
// @Produce      json
// @Success      200  {array}   string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/user/favourites [get]
// @Security     BearerAuth
func (h *Handler) listCollection(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claim := claimFromContext(c)
		items, err := h.services.Collections.List(c.Request.Context(), claim.UserID, kind)
		if err != nil {
			h.respondCollectionErr(c, "collection_list_failed", err, "kind", kind, "userId", claim.UserID)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// @Summary      Add an item to a collection
// @Description  Deduplicating insert, capped at 50 items. Re-adding a present item is a no-op.
// @Tags         collections
// @Produce      json
// @Param        id   path      string  true  "Item id"
// @Success      200  {array}   string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/user/favourites/{id} [put]
// @Security     BearerAuth
func (h *Handler) addToCollection(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("id")
		if itemID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": errMissingItemID})
			return
		}
		claim := claimFromContext(c)
		items, err := h.services.Collections.Add(c.Request.Context(), claim.UserID, kind, itemID)
		if err != nil {
			h.respondCollectionErr(c, "collection_add_failed", err, "kind", kind, "userId", claim.UserID, "itemId", itemID)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// @Summary      Remove an item from a collection
// @Description  Idempotent: removing an absent item returns the collection unchanged.
// @Tags         collections
// @Produce      json
// @Param        id   path      string  true  "Item id"
// @Success      200  {array}   string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/user/favourites/{id} [delete]
// @Security     BearerAuth
func (h *Handler) removeFromCollection(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("id")
		if itemID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": errMissingItemID})
			return
		}
		claim := claimFromContext(c)
		items, err := h.services.Collections.Remove(c.Request.Context(), claim.UserID, kind, itemID)
		if err != nil {
			h.respondCollectionErr(c, "collection_remove_failed", err, "kind", kind, "userId", claim.UserID, "itemId", itemID)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
