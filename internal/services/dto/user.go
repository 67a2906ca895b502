package dto

// Admin-side user management.

type ListUsersRequest struct {
	Role     string `form:"role" binding:"omitempty,is-role"`
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

type AdminCreateUserRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Role        string `json:"role" binding:"required,is-role"`
}

type UpdateUserRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Role        *string `json:"role,omitempty" binding:"omitempty,is-role"`
}

type UserListResponse struct {
	Users    []UserDTO `json:"users"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}

type RoleDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}
