package handler

import (
	"fmt"
	"net/http"

	"foodshare/backend/internal/auth"
	"foodshare/backend/internal/render"
	"foodshare/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// ShoppingListHandler exports the consolidated shopping list as a PDF.
type ShoppingListHandler struct {
	shoppingList *repository.ShoppingListRepository
}

func NewShoppingListHandler(shoppingList *repository.ShoppingListRepository) *ShoppingListHandler {
	return &ShoppingListHandler{shoppingList: shoppingList}
}

// DownloadShoppingCart godoc
// @Summary      Download the shopping list
// @Description  Aggregates the ingredients of every recipe in the user's cart, sums amounts per ingredient and returns the list as a PDF.
// @Tags         interactions
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200 {file} binary
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /recipes/download_shopping_cart [get]
func (h *ShoppingListHandler) DownloadShoppingCart(c *gin.Context) {
	viewerID := auth.ViewerID(c)

	items, err := h.shoppingList.Build(viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build shopping list"})
		return
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s: %d %s", item.Name, item.TotalAmount, item.MeasurementUnit))
	}

	document, err := render.Document("Shopping list", lines)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render shopping list"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="shopping_list.pdf"`)
	c.Data(http.StatusOK, "application/pdf", document)
}
