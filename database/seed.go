package database

import (
	"encoding/json"

	"golang.org/x/crypto/bcrypt"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/store"
	"github.com/yeremiapane/cafe-pos/utils"
)

// Data awal untuk instalasi baru, sama dengan sample data build browser.
var initialCategories = []models.Category{
	{ID: "1", Name: "Beverages", Color: "#3B82F6"},
	{ID: "2", Name: "Food", Color: "#10B981"},
	{ID: "3", Name: "Desserts", Color: "#F97316"},
}

var initialMenuItems = []models.MenuItem{
	{ID: "1", Name: "Coffee", Price: 2.50, CategoryID: "1"},
	{ID: "2", Name: "Tea", Price: 2.00, CategoryID: "1"},
	{ID: "3", Name: "Burger", Price: 8.99, CategoryID: "2"},
	{ID: "4", Name: "Pizza", Price: 12.99, CategoryID: "2"},
	{ID: "5", Name: "Ice Cream", Price: 4.50, CategoryID: "3"},
}

var initialTables = []models.Table{
	{ID: "1", Number: 1, Capacity: 4, Status: models.TableAvailable},
	{ID: "2", Number: 2, Capacity: 2, Status: models.TableAvailable},
	{ID: "3", Number: 3, Capacity: 6, Status: models.TableAvailable},
	{ID: "4", Number: 4, Capacity: 4, Status: models.TableAvailable},
}

// Dua akun demo: admin/admin123 dan cashier/cashier123.
var initialUsers = []struct {
	ID       string
	Username string
	Password string
	Name     string
	Role     string
}{
	{"1", "admin", "admin123", "Admin User", models.RoleAdmin},
	{"2", "cashier", "cashier123", "Cashier User", models.RoleCashier},
}

// Seed mengisi koleksi yang belum ada. Koleksi yang sudah terisi tidak disentuh,
// jadi aman dipanggil di setiap startup.
func Seed(s store.Store) error {
	if err := seedMissing(s, store.CategoriesKey, initialCategories); err != nil {
		return err
	}
	if err := seedMissing(s, store.MenuItemsKey, initialMenuItems); err != nil {
		return err
	}
	if err := seedMissing(s, store.TablesKey, initialTables); err != nil {
		return err
	}
	return seedUsers(s)
}

func seedMissing(s store.Store, key string, v interface{}) error {
	_, found, err := s.Get(key)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := s.Put(key, raw); err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded collection %s", key)
	return nil
}

func seedUsers(s store.Store) error {
	_, found, err := s.Get(store.UsersKey)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	users := make([]models.User, 0, len(initialUsers))
	for _, u := range initialUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		users = append(users, models.User{
			ID:       u.ID,
			Username: u.Username,
			Password: string(hashed),
			Name:     u.Name,
			Role:     u.Role,
		})
	}

	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	if err := s.Put(store.UsersKey, raw); err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded %d demo users", len(users))
	return nil
}
