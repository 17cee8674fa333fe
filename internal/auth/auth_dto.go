package auth

type LoginForm struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type UpdateProfileForm struct {
	FirstName   string `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName    string `json:"lastName" binding:"omitempty,min=1,max=100"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,max=30"`
}

type LoginResponse struct {
	Role       string `json:"role"`
	RedirectTo string `json:"redirectTo"`
}

type ProfileResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role"`
	Department  string `json:"department,omitempty"`
}
