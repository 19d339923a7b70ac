package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	List(ctx context.Context, limit int) ([]*User, error)
}
