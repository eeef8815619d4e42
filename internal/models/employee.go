package models

// Employee is a staff account. Password holds the pbkdf2 hash (or a legacy
// plain-text value for records created before hashing was introduced).
type Employee struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Mobile   string `json:"mobile"`
	Role     string `json:"role"` // "employee" or "manager"
	IsActive bool   `json:"isActive"`
}

// Admin is the singleton administrator account stored under the "admin" key.
// It has no persisted id or role; login injects id "admin-id" and role "admin".
type Admin struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// Barber is the public reduced view of an active employee.
type Barber struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
}
