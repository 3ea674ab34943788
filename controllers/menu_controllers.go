package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/cafe-pos/events"
	"github.com/yeremiapane/cafe-pos/pos"
	"github.com/yeremiapane/cafe-pos/store"
	"github.com/yeremiapane/cafe-pos/utils"
)

type MenuController struct {
	Catalog *pos.MenuCatalog
	Images  *store.ImageStore
}

func NewMenuController(catalog *pos.MenuCatalog, images *store.ImageStore) *MenuController {
	return &MenuController{Catalog: catalog, Images: images}
}

// GetAllMenus
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of menus", mc.Catalog.Items())
}

// CreateMenu menerima multipart form: name, price, category_id, image opsional.
func (mc *MenuController) CreateMenu(c *gin.Context) {
	// Batasi ukuran upload ke 10MB
	c.Request.ParseMultipartForm(10 << 20)

	name := c.PostForm("name")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name is required"))
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid price"))
		return
	}

	categoryID := c.PostForm("category_id")
	if _, found := mc.Catalog.GetCategory(categoryID); !found {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid category_id"))
		return
	}

	imageID, err := mc.saveUploadedImage(c)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	item := mc.Catalog.AddItem(name, price, categoryID, imageID)

	events.BroadcastMessage(events.Message{
		Event: events.EventMenuUpdate,
		Data:  item,
	})

	utils.InfoLogger.Printf("New menu item created: %s (%s)", item.Name, utils.FormatCurrency(item.Price))
	utils.RespondJSON(c, http.StatusCreated, "Menu created", item)
}

// GetMenuByID
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	item, found := mc.Catalog.GetItem(c.Param("menu_id"))
	if !found {
		utils.RespondError(c, http.StatusNotFound, errors.New(pos.ReasonMenuNotFound))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu detail", item)
}

// UpdateMenu
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	menuID := c.Param("menu_id")

	var body struct {
		Name       *string  `json:"name"`
		Price      *float64 `json:"price"`
		CategoryID *string  `json:"category_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.CategoryID != nil {
		if _, found := mc.Catalog.GetCategory(*body.CategoryID); !found {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid category_id"))
			return
		}
	}

	outcome := mc.Catalog.UpdateItem(menuID, pos.MenuItemPatch{
		Name:       body.Name,
		Price:      body.Price,
		CategoryID: body.CategoryID,
	})
	if !outcome.Applied {
		respondOutcome(c, outcome, "", nil)
		return
	}

	item, _ := mc.Catalog.GetItem(menuID)
	events.BroadcastMessage(events.Message{
		Event: events.EventMenuUpdate,
		Data:  item,
	})
	utils.RespondJSON(c, http.StatusOK, "Menu updated", item)
}

// UploadMenuImage mengganti gambar sebuah menu item.
func (mc *MenuController) UploadMenuImage(c *gin.Context) {
	menuID := c.Param("menu_id")

	item, found := mc.Catalog.GetItem(menuID)
	if !found {
		utils.RespondError(c, http.StatusNotFound, errors.New(pos.ReasonMenuNotFound))
		return
	}

	imageID, err := mc.saveUploadedImage(c)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if imageID == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("image file is required"))
		return
	}

	// Blob lama dibuang setelah pengganti tersimpan
	if item.ImageID != "" {
		if err := mc.Images.DeleteImage(item.ImageID); err != nil {
			utils.ErrorLogger.Printf("Failed to delete old image %s: %v", item.ImageID, err)
		}
	}

	mc.Catalog.UpdateItem(menuID, pos.MenuItemPatch{ImageID: &imageID})
	utils.RespondJSON(c, http.StatusOK, "Menu image uploaded", gin.H{
		"image_id": imageID,
	})
}

// DeleteMenu
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	menuID := c.Param("menu_id")

	item, found := mc.Catalog.GetItem(menuID)
	if !found {
		utils.RespondError(c, http.StatusNotFound, errors.New(pos.ReasonMenuNotFound))
		return
	}

	mc.Catalog.DeleteItem(menuID)
	if item.ImageID != "" {
		if err := mc.Images.DeleteImage(item.ImageID); err != nil {
			utils.ErrorLogger.Printf("Failed to delete image %s: %v", item.ImageID, err)
		}
	}

	utils.InfoLogger.Printf("Menu item %s deleted", item.Name)
	utils.RespondJSON(c, http.StatusOK, "Menu deleted", gin.H{
		"id": menuID,
	})
}

// GetImage menyajikan blob gambar dari image store.
func (mc *MenuController) GetImage(c *gin.Context) {
	data, err := mc.Images.GetImage(c.Param("image_id"))
	if err != nil {
		if errors.Is(err, store.ErrImageNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Data(http.StatusOK, http.DetectContentType(data), data)
}

// saveUploadedImage membaca file form "image" ke image store; mengembalikan
// string kosong jika tidak ada file terlampir.
func (mc *MenuController) saveUploadedImage(c *gin.Context) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	return mc.Images.SaveImage(data)
}
