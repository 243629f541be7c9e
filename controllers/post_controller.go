package controllers

import (
	"errors"
	"strconv"

	"bapi/models"
	"bapi/store"
	"bapi/utils"
	"bapi/validation"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	store store.Store
}

func NewPostController(s store.Store) *PostController {
	return &PostController{store: s}
}

func (pc *PostController) Create(c *gin.Context) {
	raw, _ := c.GetRawData()

	body := validation.Parse(raw)
	body.IsString("title")
	body.IsString("content")
	if !body.Valid() {
		utils.BadRequest(c, body.Messages())
		return
	}

	title, _ := body.String("title")
	content, _ := body.String("content")

	post, err := pc.store.CreatePost(c.Request.Context(), title, content)
	if err != nil {
		utils.ServerError(c)
		return
	}

	utils.Created(c, "Post created successfully", post)
}

func (pc *PostController) List(c *gin.Context) {
	posts, err := pc.store.Posts(c.Request.Context())
	if err != nil {
		utils.ServerError(c)
		return
	}
	utils.OK(c, "", posts)
}

func (pc *PostController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.NotFound(c)
		return
	}

	post, err := pc.store.PostByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			utils.NotFound(c)
			return
		}
		utils.ServerError(c)
		return
	}

	utils.OK(c, "", post)
}

func (pc *PostController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.NotFound(c)
		return
	}

	// An unknown id answers 404 before the body is looked at.
	if _, err := pc.store.PostByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			utils.NotFound(c)
			return
		}
		utils.ServerError(c)
		return
	}

	raw, _ := c.GetRawData()

	body := validation.Parse(raw)
	body.OptionalString("title")
	body.OptionalString("content")
	if !body.Valid() {
		utils.BadRequest(c, body.Messages())
		return
	}

	var update models.UpdatePost
	if title, ok := body.String("title"); ok {
		update.Title = &title
	}
	if content, ok := body.String("content"); ok {
		update.Content = &content
	}

	post, err := pc.store.UpdatePost(c.Request.Context(), id, update)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			utils.NotFound(c)
			return
		}
		utils.ServerError(c)
		return
	}

	utils.OK(c, "Post updated successfully", post)
}

func (pc *PostController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.NotFound(c)
		return
	}

	if err := pc.store.DeletePost(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			utils.NotFound(c)
			return
		}
		utils.ServerError(c)
		return
	}

	utils.OK(c, "Post deleted successfully", nil)
}

func (pc *PostController) Reset(c *gin.Context) {
	if err := pc.store.ResetPosts(c.Request.Context()); err != nil {
		utils.ServerError(c)
		return
	}
	utils.OK(c, "Posts reset successfully", nil)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
