package mapping

import (
	"github.com/devdecrux/pocketr_api/internal/core/domain"
	"github.com/devdecrux/pocketr_api/internal/models"
)

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:    m.UserID,
		Email:     m.Email,
		FirstName: FromNullString(m.FirstName),
		LastName:  FromNullString(m.LastName),
		CreatedAt: m.CreatedAt,
	}
}
