package model

type Admin struct {
	ID          string   `json:"admin_id"`
	UserID      string   `json:"user_id"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	IsActive    bool     `json:"is_active"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type AdminUpdateUserRequest struct {
	UserID   string  `json:"user_id"`
	Username *string `json:"username"`
	IsActive *bool   `json:"is_active"`
}

type AdminUpdateUserResponse struct {
	Status
	User User `json:"user"`
}

type AdminDeleteUserRequest struct {
	UserID string `json:"user_id"`
}

type AdminDeleteUserResponse struct {
	Status
}

type GetAdminsRequest struct{}

type GetAdminsResponse struct {
	Status
	Admins []Admin `json:"admins"`
}

type CreateAdminRequest struct {
	UserID      string   `json:"user_id"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

type CreateAdminResponse struct {
	Status
	Created
	Admin Admin `json:"admin"`
}

type DeleteAdminRequest struct {
	UserID string `json:"user_id"`
}

type DeleteAdminResponse struct {
	Status
}
