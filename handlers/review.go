package handlers

import (
	"net/http"

	"glambook/models"
	"glambook/services/review"
	"glambook/utils"

	"github.com/gin-gonic/gin"
)

// CreateReviewHandler lets a customer with a completed booking review the
// artist.
func CreateReviewHandler(svc review.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			ArtistID string `json:"artistId" binding:"required"`
			Rating   int    `json:"rating" binding:"required,min=1,max=5"`
			Comment  string `json:"comment"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		created, err := svc.Create(c.Request.Context(), &models.Review{
			ArtistID:   input.ArtistID,
			CustomerID: c.GetString("userID"),
			Rating:     input.Rating,
			Comment:    input.Comment,
		})
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "failed to create review", err.Error())
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// ListReviewsHandler returns an artist's reviews. Public.
func ListReviewsHandler(svc review.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := svc.ListByArtist(c.Request.Context(), c.Param("id"))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list reviews", err.Error())
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// DeleteReviewHandler removes a review. Admin only.
func DeleteReviewHandler(svc review.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			utils.JSONError(c, http.StatusNotFound, "failed to delete review", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	}
}
