package user

// CreateInput is the request body for registering a household member.
type CreateInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}

// DeleteInput identifies the member to remove.
type DeleteInput struct {
	ID string `json:"id" validate:"required,uuid"`
}
