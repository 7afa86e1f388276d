package dto

import "github.com/yukikurage/field-service-api/internal/models"

// UserDTO represents a user in API responses
type UserDTO struct {
	ID      string  `json:"id"`
	Email   string  `json:"email"`
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Avatar  *string `json:"avatar"`
}

// CompanyDTO represents a company in API responses
type CompanyDTO struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

// CompanyWithRoleDTO represents a company with the user's role
type CompanyWithRoleDTO struct {
	CompanyDTO
	Role models.CompanyRole `json:"role"`
}

// MeResponse is the authenticated user with their companies
type MeResponse struct {
	User      UserDTO              `json:"user"`
	Companies []CompanyWithRoleDTO `json:"companies"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Surname: user.Surname,
		Avatar:  user.Avatar,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}

// ToCompanyDTO converts a Company model to CompanyDTO
func ToCompanyDTO(company models.Company) CompanyDTO {
	return CompanyDTO{
		ID:      company.ID,
		Name:    company.Name,
		Address: company.Address,
		Phone:   company.Phone,
		Email:   company.Email,
	}
}

// ToMeResponse combines a user with their memberships
func ToMeResponse(user models.User, memberships []models.CompanyUser) MeResponse {
	companies := make([]CompanyWithRoleDTO, len(memberships))
	for i, member := range memberships {
		companies[i] = CompanyWithRoleDTO{
			CompanyDTO: ToCompanyDTO(member.Company),
			Role:       member.Role,
		}
	}
	return MeResponse{User: ToUserDTO(user), Companies: companies}
}
