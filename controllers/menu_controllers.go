package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tavolo-app/backend/models"
	"github.com/tavolo-app/backend/services"
	"github.com/tavolo-app/backend/utils"
)

type MenuController struct {
	service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{service: service}
}

// GetAllMenuItems lists menu items, optionally narrowed by query parameters:
// ?category=mains, ?q=search text, ?tags=vegan,gluten-free.
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	var (
		items []models.MenuItem
		err   error
	)
	switch {
	case c.Query("category") != "":
		items, err = mc.service.GetByCategory(c.Query("category"))
	case c.Query("q") != "":
		items, err = mc.service.Search(c.Query("q"))
	case c.Query("tags") != "":
		items, err = mc.service.GetByDietaryTags(splitTags(c.Query("tags")))
	default:
		items, err = mc.service.GetAll()
	}
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching menu items: %v", err)
		utils.RespondJSON(c, http.StatusOK, "List of menu items", []models.MenuItem{})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

func (mc *MenuController) GetMenuItemByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu item id"))
		return
	}

	item, err := mc.service.GetByID(id)
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching menu item %d: %v", id, err)
		utils.RespondJSON(c, http.StatusOK, "Menu item detail", nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// GetMenuMeta exposes the fixed category and dietary tag vocabularies.
func (mc *MenuController) GetMenuMeta(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Menu metadata", gin.H{
		"categories":   mc.service.Categories(),
		"dietary_tags": mc.service.DietaryTags(),
	})
}

func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
