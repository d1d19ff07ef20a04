package entity

import "time"

// Roles de usuario. La autorización por rol la resuelve la capa externa;
// el núcleo solo persiste el dato.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleDriver  = "driver"
)

// User operario de bodega, gerente o conductor.
type User struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	Role          string
	Address       string
	City          string
	District      string
	ContactNumber string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
