package dto

type RoleResponse struct {
	Role string `json:"role"`
}
