package services

import (
	"context"
	"errors"

	"bapi/models"
	"bapi/store"

	"gorm.io/gorm"
)

func (s *Store) CreatePost(ctx context.Context, title, content string) (*models.Post, error) {
	post := &models.Post{Title: title, Content: content}
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	post.Comments = []models.Comment{}
	return post, nil
}

func (s *Store) Posts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.WithContext(ctx).
		Preload("Comments", orderComments).
		Order("id ASC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].Comments == nil {
			posts[i].Comments = []models.Comment{}
		}
	}
	return posts, nil
}

func (s *Store) PostByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).Preload("Comments", orderComments).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrPostNotFound
		}
		return nil, err
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	return &post, nil
}

func (s *Store) UpdatePost(ctx context.Context, id uint, update models.UpdatePost) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			return err
		}
		if update.Title != nil {
			post.Title = *update.Title
		}
		if update.Content != nil {
			post.Content = *update.Content
		}
		return tx.Save(&post).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrPostNotFound
		}
		return nil, err
	}
	return s.PostByID(ctx, id)
}

func (s *Store) DeletePost(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrPostNotFound
	}
	return err
}

func (s *Store) ResetPosts(ctx context.Context) error {
	return s.resetTables(ctx, "comments", "posts")
}

func orderComments(db *gorm.DB) *gorm.DB {
	return db.Order("comments.id ASC")
}
