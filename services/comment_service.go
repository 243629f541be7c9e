package services

import (
	"context"
	"errors"

	"bapi/models"
	"bapi/store"

	"gorm.io/gorm"
)

func (s *Store) CreateComment(ctx context.Context, postID uint, content string) (*models.Comment, error) {
	comment := &models.Comment{PostID: postID, Content: content}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			return err
		}
		return tx.Create(comment).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrPostNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *Store) DeleteComment(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, id).Error; err != nil {
			return err
		}
		return tx.Delete(&comment).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrCommentNotFound
	}
	return err
}

func (s *Store) ResetComments(ctx context.Context) error {
	return s.resetTables(ctx, "comments")
}
