package converter

import (
	"pharmacenter-api/internal/delivery/dto"
	"pharmacenter-api/internal/domain/entity"
)

// UserToResponse converts a User entity to its response DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Phone:     user.Phone,
		Role:      user.Role.RoleName,
		IsActive:  user.Active(),
		CreatedAt: user.CreatedAt,
	}
}

// UsersToResponses converts a slice of User entities
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		resp := UserToResponse(&users[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
