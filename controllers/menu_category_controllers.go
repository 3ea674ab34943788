package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/cafe-pos/pos"
	"github.com/yeremiapane/cafe-pos/utils"
)

type MenuCategoryController struct {
	Catalog *pos.MenuCatalog
}

func NewMenuCategoryController(catalog *pos.MenuCatalog) *MenuCategoryController {
	return &MenuCategoryController{Catalog: catalog}
}

// GetAllCategories
func (mcc *MenuCategoryController) GetAllCategories(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "All menu categories", mcc.Catalog.Categories())
}

// CreateCategory
func (mcc *MenuCategoryController) CreateCategory(c *gin.Context) {
	var body struct {
		Name  string `json:"name" binding:"required"`
		Color string `json:"color"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	category := mcc.Catalog.AddCategory(body.Name, body.Color)
	utils.RespondJSON(c, http.StatusCreated, "Category created", category)
}

// GetCategoryByID
func (mcc *MenuCategoryController) GetCategoryByID(c *gin.Context) {
	category, found := mcc.Catalog.GetCategory(c.Param("cat_id"))
	if !found {
		utils.RespondError(c, http.StatusNotFound, errors.New(pos.ReasonCategoryNotFound))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category detail", category)
}

// UpdateCategory
func (mcc *MenuCategoryController) UpdateCategory(c *gin.Context) {
	catID := c.Param("cat_id")

	var body struct {
		Name  *string `json:"name"`
		Color *string `json:"color"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	outcome := mcc.Catalog.UpdateCategory(catID, pos.CategoryPatch{
		Name:  body.Name,
		Color: body.Color,
	})
	if !outcome.Applied {
		respondOutcome(c, outcome, "", nil)
		return
	}

	category, _ := mcc.Catalog.GetCategory(catID)
	utils.RespondJSON(c, http.StatusOK, "Category updated", category)
}

// DeleteCategory ditolak selama masih ada menu item di kategori ini.
func (mcc *MenuCategoryController) DeleteCategory(c *gin.Context) {
	outcome := mcc.Catalog.DeleteCategory(c.Param("cat_id"))
	respondOutcome(c, outcome, "Category deleted", gin.H{
		"id": c.Param("cat_id"),
	})
}
