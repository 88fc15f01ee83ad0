package userclient

import (
	"time"

	"orderservice/internal/core/domain/model/user"

	"orderservice/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

// UserDTO mirrors the user service's wire representation of a user.
type UserDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Email     string    `json:"email"`
	BirthDate string    `json:"birthDate"`
	Cards     []CardDTO `json:"cards"`
}

// CardDTO mirrors the user service's wire representation of a payment card.
type CardDTO struct {
	ID             int64  `json:"id"`
	Number         string `json:"number"`
	Holder         string `json:"holder"`
	ExpirationDate string `json:"expirationDate"`
	UserID         int64  `json:"userId"`
}

// UserPageDTO is the paged envelope the user service wraps list responses in.
// Only the content is of interest here.
type UserPageDTO struct {
	Content []UserDTO `json:"content"`
}

func toDomain(dto UserDTO) (*user.User, error) {
	birthDate, err := parseDate(dto.BirthDate, "birthDate")
	if err != nil {
		return nil, err
	}

	cards := make([]user.Card, 0, len(dto.Cards))
	for _, c := range dto.Cards {
		expiration, cardErr := parseDate(c.ExpirationDate, "expirationDate")
		if cardErr != nil {
			return nil, cardErr
		}
		cards = append(cards, user.Card{
			ID:             c.ID,
			Number:         c.Number,
			Holder:         c.Holder,
			ExpirationDate: expiration,
			UserID:         c.UserID,
		})
	}

	return &user.User{
		ID:        dto.ID,
		Name:      dto.Name,
		Surname:   dto.Surname,
		Email:     dto.Email,
		BirthDate: birthDate,
		Cards:     cards,
	}, nil
}

func parseDate(value, paramName string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}

	return parsed, nil
}
