// Package store defines the persistence abstraction shared by the GORM and
// in-memory backends.
package store

import (
	"context"
	"errors"

	"bapi/models"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already exists")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
)

type UserStore interface {
	// CreateUser persists a user whose password is already hashed.
	CreateUser(ctx context.Context, user *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id uint) (*models.User, error)
	ResetUsers(ctx context.Context) error
}

type PostStore interface {
	CreatePost(ctx context.Context, title, content string) (*models.Post, error)
	Posts(ctx context.Context) ([]models.Post, error)
	PostByID(ctx context.Context, id uint) (*models.Post, error)
	UpdatePost(ctx context.Context, id uint, update models.UpdatePost) (*models.Post, error)
	// DeletePost removes the post and all of its comments.
	DeletePost(ctx context.Context, id uint) error
	ResetPosts(ctx context.Context) error
}

type CommentStore interface {
	CreateComment(ctx context.Context, postID uint, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, id uint) error
	ResetComments(ctx context.Context) error
}

type Store interface {
	UserStore
	PostStore
	CommentStore
}
