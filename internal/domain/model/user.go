package model

import "time"

type User struct {
	ID        string
	Username  string
	Email     string
	CreatedAt time.Time
}

func NewUser(id, username, email string) *User {
	return &User{
		ID:        id,
		Username:  username,
		Email:     email,
		CreatedAt: time.Now(),
	}
}
