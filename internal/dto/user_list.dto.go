package dto

import "github.com/PainelServices01/user-admin-GO/internal/models"

// UserDTO é o espelho público de models.User: nunca carrega o hash de senha.
type UserDTO struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	CEP   *string `json:"cep"`
	State *string `json:"state"`
	City  *string `json:"city"`
	Role  string  `json:"role"`
}

// CreatedUserDTO: resposta do cadastro expõe apenas id, nome e email.
type CreatedUserDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		CEP:   u.CEP,
		State: u.State,
		City:  u.City,
		Role:  u.Role,
	}
}

func NewUserList(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, NewUserDTO(&users[i]))
	}
	return out
}

func NewCreatedUserDTO(u *models.User) CreatedUserDTO {
	return CreatedUserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
