package model

type Role string

const (
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleManager || r == RoleAdmin
}

// Claims identify the caller of a request. Subject is the user id for
// customers and the manager id for managers.
type Claims struct {
	Role    Role   `json:"role"`
	Subject string `json:"subject"`
}

func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}

func (c *Claims) IsManager() bool {
	return c != nil && c.Role == RoleManager
}

func (c *Claims) IsStaff() bool {
	return c.IsAdmin() || c.IsManager()
}
