package db

type UserDB struct {
	ID          int64
	Login       string
	DisplayName string
	Email       string
}
