package author

import (
	"github.com/brianvoe/gofakeit/v7"
)

func NewRandomAuthor() *Author {
	return &Author{
		Login:       gofakeit.Username(),
		DisplayName: gofakeit.Name(),
		Email:       gofakeit.Email(),
	}
}
