package models

// Role is the access level tag on a user account.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleStaff    Role = "Staff"
	RoleCustomer Role = "Customer"
)

// IsValid reports whether the role is one of the three known values.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStaff || r == RoleCustomer
}

// User is the list-view record returned by GetAllUserAdmin.
type User struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Role        Role   `json:"role"`
	Avatar      string `json:"avatar"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      int    `json:"gender"`
}

// GenderText maps the upstream gender code to a display label.
func (u User) GenderText() string {
	switch u.Gender {
	case 1:
		return "Male"
	case 2:
		return "Female"
	default:
		return "Other"
	}
}

// Profile is the current operator's record returned by GetUserInfo.
type Profile struct {
	UserID      int    `json:"userID"`
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	Fullname    string `json:"fullname"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	CreatedDate string `json:"createdDate"`
	Avatar      string `json:"avatar"`
	Gender      int    `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
	Role        Role   `json:"role"`
}
