package models

// User role
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"` // bcrypt hash, hanya untuk koleksi tersimpan
	Name     string `json:"name"`
	Role     string `json:"role"`
}
