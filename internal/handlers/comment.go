package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwell-dev/inkwell/db"
	"github.com/inkwell-dev/inkwell/internal/models"
	"github.com/inkwell-dev/inkwell/internal/utils"
	"gorm.io/gorm"
)

type CreateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

func CreateComment(ctx *gin.Context) {
	var req CreateCommentRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		if fields := utils.BindingErrors(err); fields != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "errors": fields})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	postID := ctx.Param("post_id")

	var post models.BlogPost

	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		} else {
			log.Printf("Failed to fetch post: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve post"})
		}
		return
	}

	comment := models.Comment{
		Body:     req.Body,
		AuthorID: userID,
		PostID:   post.ID,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		log.Printf("Failed to create comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	if err := db.DB.Preload("Author").First(&comment, comment.ID).Error; err != nil {
		log.Printf("Failed to reload comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	ctx.JSON(http.StatusCreated, CommentSummary{
		ID:        comment.ID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
		Author:    authorSummary(comment.Author),
	})
}

func DeleteComment(ctx *gin.Context) {
	postID := ctx.Param("post_id")
	commentID := ctx.Param("comment_id")

	var comment models.Comment

	if err := db.DB.First(&comment, "id = ? AND post_id = ?", commentID, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		} else {
			log.Printf("Failed to fetch comment: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comment"})
		}
		return
	}

	if err := db.DB.Delete(&comment).Error; err != nil {
		log.Printf("Failed to delete comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
