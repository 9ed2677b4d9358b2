package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Directory DirectoryRepository
	User      UserRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Directory: NewDirectoryRepository(db),
		User:      NewUserRepository(db),
	}
}
