package controllers

import (
	"errors"

	"bapi/store"
	"bapi/utils"
	"bapi/validation"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	store store.Store
}

func NewCommentController(s store.Store) *CommentController {
	return &CommentController{store: s}
}

func (cc *CommentController) Create(c *gin.Context) {
	raw, _ := c.GetRawData()

	body := validation.Parse(raw)
	body.NotEmpty("post_id")
	body.IsNumber("post_id")
	body.NotEmpty("content")
	body.IsString("content")
	if !body.Valid() {
		utils.BadRequest(c, body.Messages())
		return
	}

	postID, _ := body.Number("post_id")
	content, _ := body.String("content")

	comment, err := cc.store.CreateComment(c.Request.Context(), uint(postID), content)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			utils.NotFound(c)
			return
		}
		utils.ServerError(c)
		return
	}

	utils.Created(c, "Comment created successfully", comment)
}

func (cc *CommentController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.NotFound(c)
		return
	}

	if err := cc.store.DeleteComment(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrCommentNotFound) {
			utils.NotFound(c)
			return
		}
		utils.ServerError(c)
		return
	}

	utils.OK(c, "Comment deleted successfully", nil)
}

func (cc *CommentController) Reset(c *gin.Context) {
	if err := cc.store.ResetComments(c.Request.Context()); err != nil {
		utils.ServerError(c)
		return
	}
	utils.OK(c, "Comments reset successfully", nil)
}
