package request

type LoginRequest struct {
	UserName string `json:"user_name" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
}
