package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"bapi/models"
)

// Memory is a mutex-guarded in-process Store. Ids are monotonic counters
// that restart only when the matching reset operation runs.
type Memory struct {
	mu            sync.RWMutex
	users         map[uint]*models.User
	posts         map[uint]*models.Post
	comments      map[uint]*models.Comment
	nextUserID    uint
	nextPostID    uint
	nextCommentID uint
}

func NewMemory() *Memory {
	return &Memory{
		users:         make(map[uint]*models.User),
		posts:         make(map[uint]*models.Post),
		comments:      make(map[uint]*models.Comment),
		nextUserID:    1,
		nextPostID:    1,
		nextCommentID: 1,
	}
}

func (m *Memory) CreateUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == user.Email {
			return ErrEmailTaken
		}
	}

	now := time.Now()
	user.ID = m.nextUserID
	user.CreatedAt = now
	user.UpdatedAt = now
	m.nextUserID++

	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *Memory) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			result := *u
			return &result, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *Memory) UserByID(ctx context.Context, id uint) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, exists := m.users[id]
	if !exists {
		return nil, ErrUserNotFound
	}
	result := *u
	return &result, nil
}

func (m *Memory) ResetUsers(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = make(map[uint]*models.User)
	m.nextUserID = 1
	return nil
}

func (m *Memory) CreatePost(ctx context.Context, title, content string) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	post := &models.Post{
		ID:        m.nextPostID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.nextPostID++
	m.posts[post.ID] = post

	result := *post
	result.Comments = []models.Comment{}
	return &result, nil
}

func (m *Memory) Posts(ctx context.Context) ([]models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]models.Post, 0, len(m.posts))
	for _, p := range m.posts {
		post := *p
		post.Comments = m.commentsOf(p.ID)
		result = append(result, post)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *Memory) PostByID(ctx context.Context, id uint) (*models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, exists := m.posts[id]
	if !exists {
		return nil, ErrPostNotFound
	}

	result := *p
	result.Comments = m.commentsOf(id)
	return &result, nil
}

func (m *Memory) UpdatePost(ctx context.Context, id uint, update models.UpdatePost) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, exists := m.posts[id]
	if !exists {
		return nil, ErrPostNotFound
	}

	if update.Title != nil {
		p.Title = *update.Title
	}
	if update.Content != nil {
		p.Content = *update.Content
	}
	p.UpdatedAt = time.Now()

	result := *p
	result.Comments = m.commentsOf(id)
	return &result, nil
}

func (m *Memory) DeletePost(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.posts[id]; !exists {
		return ErrPostNotFound
	}

	delete(m.posts, id)
	for cid, c := range m.comments {
		if c.PostID == id {
			delete(m.comments, cid)
		}
	}
	return nil
}

func (m *Memory) ResetPosts(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.posts = make(map[uint]*models.Post)
	m.comments = make(map[uint]*models.Comment)
	m.nextPostID = 1
	// the cascade restarts comment ids too, like the SQL backend's
	// RESTART IDENTITY
	m.nextCommentID = 1
	return nil
}

func (m *Memory) CreateComment(ctx context.Context, postID uint, content string) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.posts[postID]; !exists {
		return nil, ErrPostNotFound
	}

	comment := &models.Comment{
		ID:        m.nextCommentID,
		PostID:    postID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	m.nextCommentID++
	m.comments[comment.ID] = comment

	result := *comment
	return &result, nil
}

func (m *Memory) DeleteComment(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.comments[id]; !exists {
		return ErrCommentNotFound
	}
	delete(m.comments, id)
	return nil
}

func (m *Memory) ResetComments(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.comments = make(map[uint]*models.Comment)
	m.nextCommentID = 1
	return nil
}

// commentsOf assembles a post's live comments in ascending id order.
// Callers must hold at least a read lock.
func (m *Memory) commentsOf(postID uint) []models.Comment {
	result := []models.Comment{}
	for _, c := range m.comments {
		if c.PostID == postID {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}
