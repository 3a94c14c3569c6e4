package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkwell-dev/inkwell/db"
	"github.com/inkwell-dev/inkwell/internal/avatar"
	"github.com/inkwell-dev/inkwell/internal/models"
	"github.com/inkwell-dev/inkwell/internal/utils"
	"gorm.io/gorm"
)

// postDateFormat matches the human-readable date stored on each post,
// e.g. "August 31, 2026".
const postDateFormat = "January 2, 2006"

type CreatePostRequest struct {
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle" binding:"required"`
	ImgURL   string `json:"img_url" binding:"required,url"`
	Body     string `json:"body" binding:"required"`
}

type UpdatePostRequest struct {
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle" binding:"required"`
	ImgURL   string `json:"img_url" binding:"required,url"`
	Body     string `json:"body" binding:"required"`
}

type AuthorSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type CommentSummary struct {
	ID        uint          `json:"id"`
	Body      string        `json:"body"`
	CreatedAt time.Time     `json:"created_at"`
	Author    AuthorSummary `json:"author"`
}

type PostSummary struct {
	ID       uint          `json:"id"`
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Date     string        `json:"date"`
	ImgURL   string        `json:"img_url"`
	Author   AuthorSummary `json:"author"`
}

type PostDetail struct {
	ID       uint             `json:"id"`
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle"`
	Date     string           `json:"date"`
	Body     string           `json:"body"`
	ImgURL   string           `json:"img_url"`
	Author   AuthorSummary    `json:"author"`
	Comments []CommentSummary `json:"comments"`
}

func authorSummary(user models.User) AuthorSummary {
	return AuthorSummary{
		ID:        user.ID,
		Name:      user.Name,
		AvatarURL: avatar.URL(user.Email, 0, ""),
	}
}

func CreatePost(ctx *gin.Context) {
	var req CreatePostRequest

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

	post := models.BlogPost{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Date:     time.Now().Format(postDateFormat),
		Body:     req.Body,
		ImgURL:   req.ImgURL,
		AuthorID: userID,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "A post with this title already exists"})
			return
		}
		log.Printf("Failed to create post: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	if err := db.DB.Preload("Author").First(&post, post.ID).Error; err != nil {
		log.Printf("Failed to reload post: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	ctx.JSON(http.StatusCreated, PostSummary{
		ID:       post.ID,
		Title:    post.Title,
		Subtitle: post.Subtitle,
		Date:     post.Date,
		ImgURL:   post.ImgURL,
		Author:   authorSummary(post.Author),
	})
}

func ListPosts(ctx *gin.Context) {
	var posts []models.BlogPost

	if err := db.DB.Preload("Author").Order("created_at DESC").Find(&posts).Error; err != nil {
		log.Printf("Failed to list posts: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve posts"})
		return
	}

	response := make([]PostSummary, 0, len(posts))

	for _, post := range posts {
		response = append(response, PostSummary{
			ID:       post.ID,
			Title:    post.Title,
			Subtitle: post.Subtitle,
			Date:     post.Date,
			ImgURL:   post.ImgURL,
			Author:   authorSummary(post.Author),
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func GetPost(ctx *gin.Context) {
	postID := ctx.Param("post_id")

	var post models.BlogPost

	err := db.DB.Preload("Author").
		Preload("Comments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		First(&post, "id = ?", postID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		} else {
			log.Printf("Failed to fetch post: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve post"})
		}
		return
	}

	comments := make([]CommentSummary, 0, len(post.Comments))

	for _, comment := range post.Comments {
		comments = append(comments, CommentSummary{
			ID:        comment.ID,
			Body:      comment.Body,
			CreatedAt: comment.CreatedAt,
			Author:    authorSummary(comment.Author),
		})
	}

	ctx.JSON(http.StatusOK, PostDetail{
		ID:       post.ID,
		Title:    post.Title,
		Subtitle: post.Subtitle,
		Date:     post.Date,
		Body:     post.Body,
		ImgURL:   post.ImgURL,
		Author:   authorSummary(post.Author),
		Comments: comments,
	})
}

func UpdatePost(ctx *gin.Context) {
	var req UpdatePostRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		if fields := utils.BindingErrors(err); fields != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "errors": fields})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
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

	post.Title = req.Title
	post.Subtitle = req.Subtitle
	post.ImgURL = req.ImgURL
	post.Body = req.Body

	if err := db.DB.Save(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "A post with this title already exists"})
			return
		}
		log.Printf("Failed to update post: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	ctx.JSON(http.StatusOK, PostSummary{
		ID:       post.ID,
		Title:    post.Title,
		Subtitle: post.Subtitle,
		Date:     post.Date,
		ImgURL:   post.ImgURL,
	})
}

func DeletePost(ctx *gin.Context) {
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

	// Comments on the post go with it via the FK cascade.
	if err := db.DB.Delete(&post).Error; err != nil {
		log.Printf("Failed to delete post: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
