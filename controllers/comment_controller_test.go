package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createComment(t *testing.T, r *gin.Engine, token string, postID int, content string) map[string]any {
	t.Helper()
	w := perform(r, http.MethodPost, "/comments", token, gin.H{"post_id": postID, "content": content})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return dataOf(t, w)
}

func postComments(t *testing.T, r *gin.Engine, token, path string) []any {
	t.Helper()
	w := perform(r, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	comments, ok := dataOf(t, w)["comments"].([]any)
	require.True(t, ok)
	return comments
}

func TestCommentRoutesRequireAuth(t *testing.T) {
	r := newTestRouter(t)

	requireUnauthorized(t, perform(r, http.MethodPost, "/comments", "", nil))
	requireUnauthorized(t, perform(r, http.MethodDelete, "/comments/5", "", nil))
}

func TestCreateCommentValidation(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := perform(r, http.MethodPost, "/comments", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Bad Request", decode(t, w)["error"])

	messages := messagesOf(t, w)
	assert.Contains(t, messages, "post_id should not be empty")
	assert.Contains(t, messages, "post_id must be a number conforming to the specified constraints")
	assert.Contains(t, messages, "content should not be empty")
	assert.Contains(t, messages, "content must be a string")
}

func TestCreateComment(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)
	createPost(t, r, token, "first post", "hello world")

	data := createComment(t, r, token, 1, "nice post")
	assert.Equal(t, float64(1), data["post_id"])
	assert.Equal(t, "nice post", data["content"])
}

func TestCreateCommentUnknownPost(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := perform(r, http.MethodPost, "/comments", token, gin.H{"post_id": 99, "content": "orphan"})
	requireNotFound(t, w)
}

func TestCommentVisibleThroughPosts(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)
	createPost(t, r, token, "first post", "hello world")
	createPost(t, r, token, "second post", "more content")
	createComment(t, r, token, 2, "nice post")

	// embedded in get-by-id
	comments := postComments(t, r, token, "/posts/2")
	require.Len(t, comments, 1)
	assert.Equal(t, "nice post", comments[0].(map[string]any)["content"])

	// and in the all-posts listing
	w := perform(r, http.MethodGet, "/posts", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	posts := decode(t, w)["data"].([]any)
	require.Len(t, posts, 2)

	first := posts[0].(map[string]any)["comments"].([]any)
	assert.Empty(t, first)
	second := posts[1].(map[string]any)["comments"].([]any)
	require.Len(t, second, 1)
	assert.Equal(t, "nice post", second[0].(map[string]any)["content"])
}

func TestDeleteComment(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)
	createPost(t, r, token, "first post", "hello world")
	createComment(t, r, token, 1, "nice post")

	w := perform(r, http.MethodDelete, "/comments/42", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = perform(r, http.MethodDelete, "/comments/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Comment deleted successfully", body["message"])

	assert.Empty(t, postComments(t, r, token, "/posts/1"))
}

func TestDeletePostHidesItsComments(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)
	createPost(t, r, token, "first post", "hello world")
	createComment(t, r, token, 1, "doomed comment")

	w := perform(r, http.MethodDelete, "/posts/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// the cascade removed the comment with its post
	w = perform(r, http.MethodDelete, "/comments/1", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentsResetRestartsIDs(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)
	createPost(t, r, token, "first post", "hello world")
	createComment(t, r, token, 1, "one")
	createComment(t, r, token, 1, "two")

	w := perform(r, http.MethodDelete, "/comments/reset", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, postComments(t, r, token, "/posts/1"))

	data := createComment(t, r, token, 1, "fresh")
	assert.Equal(t, float64(1), data["id"])
}
