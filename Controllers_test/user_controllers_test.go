package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/yeremiapane/cafe-pos/controllers"
	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/store"
)

func seedUsers(env *testEnv) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	store.SaveJSON(env.Store, store.UsersKey, []models.User{
		{ID: "U1", Username: "admin", Password: string(hash), Name: "Admin", Role: models.RoleAdmin},
	})
}

func setupUserRouter(env *testEnv) *gin.Engine {
	router := gin.Default()
	userCtrl := controllers.NewUserController(env.Store)
	router.POST("/login", userCtrl.Login)
	router.GET("/profile", authAs("U1", models.RoleAdmin), userCtrl.Profile)
	return router
}

func TestLoginSuccess(t *testing.T) {
	env := newTestEnv()
	seedUsers(env)
	router := setupUserRouter(env)

	payload, _ := json.Marshal(map[string]string{"username": "admin", "password": "admin123"})
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Login successful", response["message"])

	data := response["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "admin", user["username"])
	// Password hash tidak boleh ikut keluar
	assert.NotContains(t, user, "password")
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv()
	seedUsers(env)
	router := setupUserRouter(env)

	payload, _ := json.Marshal(map[string]string{"username": "admin", "password": "salah"})
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	env := newTestEnv()
	seedUsers(env)
	router := setupUserRouter(env)

	payload, _ := json.Marshal(map[string]string{"username": "nobody", "password": "admin123"})
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileReturnsAuthenticatedUser(t *testing.T) {
	env := newTestEnv()
	seedUsers(env)
	router := setupUserRouter(env)

	req, _ := http.NewRequest("GET", "/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Admin", data["name"])
	assert.Equal(t, models.RoleAdmin, data["role"])
}
