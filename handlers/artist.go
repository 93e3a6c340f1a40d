package handlers

import (
	"net/http"

	"glambook/models"
	"glambook/services/artist"
	"glambook/services/availability"
	"glambook/utils"

	"github.com/gin-gonic/gin"
)

// ListArtistsHandler returns the artist directory, optionally filtered by
// specialty. Public.
func ListArtistsHandler(svc artist.ArtistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		artists, err := svc.List(c.Request.Context(), c.Query("specialty"))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list artists", err.Error())
			return
		}
		c.JSON(http.StatusOK, artists)
	}
}

// GetArtistHandler returns one artist profile. Public.
func GetArtistHandler(svc artist.ArtistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "artist not found", err.Error())
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

// CreateArtistHandler creates the artist profile for the authenticated
// ARTIST account.
func CreateArtistHandler(svc artist.ArtistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Artist
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		input.UserID = c.GetString("userID")

		created, err := svc.Create(c.Request.Context(), &input)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "failed to create artist profile", err.Error())
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// resolveOwnArtist loads the artist profile owned by the authenticated
// account, or aborts. Admins may instead address any artist via the id
// parameter.
func resolveOwnArtist(c *gin.Context, svc artist.ArtistService) (*models.Artist, bool) {
	if c.GetString("role") == string(models.RoleAdmin) {
		if id := c.Param("id"); id != "" {
			a, err := svc.GetByID(c.Request.Context(), id)
			if err != nil {
				utils.JSONError(c, http.StatusNotFound, "artist not found", err.Error())
				return nil, false
			}
			return a, true
		}
	}
	a, err := svc.GetByUserID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "no artist profile for this account", err.Error())
		return nil, false
	}
	return a, true
}

// UpdateArtistHandler updates the caller's own profile (or any profile for
// admins).
func UpdateArtistHandler(svc artist.ArtistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := resolveOwnArtist(c, svc)
		if !ok {
			return
		}

		var input struct {
			Name         *string   `json:"name"`
			Bio          *string   `json:"bio"`
			Specialties  *[]string `json:"specialties"`
			Location     *string   `json:"location"`
			SessionPrice *float64  `json:"sessionPrice"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		if input.Name != nil {
			current.Name = *input.Name
		}
		if input.Bio != nil {
			current.Bio = *input.Bio
		}
		if input.Specialties != nil {
			current.Specialties = *input.Specialties
		}
		if input.Location != nil {
			current.Location = *input.Location
		}
		if input.SessionPrice != nil {
			current.SessionPrice = *input.SessionPrice
		}

		updated, err := svc.Update(c.Request.Context(), current)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to update artist", err.Error())
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteArtistHandler removes an artist profile. Admin only.
func DeleteArtistHandler(svc artist.ArtistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			utils.JSONError(c, http.StatusNotFound, "failed to delete artist", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	}
}

// SetAvailabilityHandler replaces the artist's working-hours config
// wholesale. Artists act on their own profile; admins on any.
func SetAvailabilityHandler(svc artist.ArtistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		target, ok := resolveOwnArtist(c, svc)
		if !ok {
			return
		}

		var cfg models.AvailabilityConfig
		if err := c.ShouldBindJSON(&cfg); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		if err := svc.SetAvailability(c.Request.Context(), target.ID, cfg); err != nil {
			if availability.IsConfiguration(err) {
				utils.JSONError(c, http.StatusUnprocessableEntity, "invalid availability config", err.Error())
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "failed to set availability", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"artistId": target.ID, "availability": cfg})
	}
}
