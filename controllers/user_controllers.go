package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/store"
	"github.com/yeremiapane/cafe-pos/utils"
)

type UserController struct {
	Store store.Store
}

func NewUserController(s store.Store) *UserController {
	return &UserController{Store: s}
}

func (uc *UserController) loadUsers() ([]models.User, error) {
	var users []models.User
	if err := store.LoadJSON(uc.Store, store.UsersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Login memeriksa kredensial terhadap koleksi user tersimpan -> return JWT
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	users, err := uc.loadUsers()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var user *models.User
	for i := range users {
		if users[i].Username == input.Username {
			user = &users[i]
			break
		}
	}
	if user == nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("User logged in: %s (role=%s)", user.Username, user.Role)
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"name":     user.Name,
			"role":     user.Role,
		},
	})
}

// Logout memasukkan token ke blacklist sampai kadaluarsa.
func (uc *UserController) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("missing token"))
		return
	}

	utils.BlacklistToken(tokenString)
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

// Profile mengembalikan identitas user dari token.
func (uc *UserController) Profile(c *gin.Context) {
	userID := c.GetString("user_id")

	users, err := uc.loadUsers()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	for i := range users {
		if users[i].ID == userID {
			utils.RespondJSON(c, http.StatusOK, "User profile", gin.H{
				"id":       users[i].ID,
				"username": users[i].Username,
				"name":     users[i].Name,
				"role":     users[i].Role,
			})
			return
		}
	}

	utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
}
