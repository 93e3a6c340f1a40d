package handlers

import (
	"net/http"
	"time"

	"glambook/config"
	artistRepo "glambook/database/repository/artist"
	bookingRepo "glambook/database/repository/booking"
	"glambook/models"
	"glambook/services/availability"
	"glambook/services/tasks"
	"glambook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// GetSlotsHandler returns the artist's slot calendar for a date range.
// Public; anonymous customers may browse availability.
func GetSlotsHandler(engine availability.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		artistID := c.Param("id")

		from, err := time.Parse(dateLayout, c.DefaultQuery("from", time.Now().Format(dateLayout)))
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid 'from' date", err.Error())
			return
		}
		to := from
		if toParam := c.Query("to"); toParam != "" {
			to, err = time.Parse(dateLayout, toParam)
			if err != nil {
				utils.JSONError(c, http.StatusBadRequest, "invalid 'to' date", err.Error())
				return
			}
		}

		slots, err := engine.ComputeSlots(c.Request.Context(), artistID, from, to)
		if err != nil {
			if availability.IsConfiguration(err) {
				utils.JSONError(c, http.StatusUnprocessableEntity, "availability misconfigured", err.Error())
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"artistId": artistID, "slots": slots})
	}
}

// ReserveSlotHandler books a slot for the authenticated customer and
// schedules the pending-hold expiry task.
func ReserveSlotHandler(engine availability.Engine, queue *asynq.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			ArtistID    string    `json:"artistId" binding:"required"`
			StartAt     time.Time `json:"startAt" binding:"required"`
			ServiceType string    `json:"serviceType" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		booking, err := engine.ReserveSlot(c.Request.Context(), availability.ReserveRequest{
			ArtistID:    input.ArtistID,
			CustomerID:  c.GetString("userID"),
			StartAt:     input.StartAt,
			ServiceType: input.ServiceType,
		})
		if err != nil {
			switch {
			case availability.IsInvalidSlot(err):
				utils.JSONError(c, http.StatusUnprocessableEntity, "invalid slot", err.Error())
			case availability.IsConflict(err):
				utils.JSONError(c, http.StatusConflict, "slot already booked", err.Error())
			case availability.IsConfiguration(err):
				utils.JSONError(c, http.StatusUnprocessableEntity, "availability misconfigured", err.Error())
			default:
				utils.JSONError(c, http.StatusInternalServerError, "failed to reserve slot", err.Error())
			}
			return
		}

		holdTTL := time.Duration(config.AppConfig.PendingBookingTTLMin) * time.Minute
		if task, opts, err := tasks.NewExpiryTask(booking.ID, time.Now().Add(holdTTL)); err == nil {
			if _, err := queue.Enqueue(task, opts...); err != nil {
				utils.GetLogger().Warn("failed to schedule booking expiry", zap.Error(err))
			}
		}

		c.JSON(http.StatusCreated, booking)
	}
}

// CancelBookingHandler cancels a booking. Customers may cancel their own;
// the booked artist and admins may cancel any of theirs.
func CancelBookingHandler(engine availability.Engine, bookings bookingRepo.BookingRepository, artists artistRepo.ArtistRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID := c.Param("id")
		actorID := c.GetString("userID")

		booking, err := bookings.GetByID(c.Request.Context(), bookingID)
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
			return
		}
		if !mayActOnBooking(c, booking, artists) {
			utils.JSONError(c, http.StatusForbidden, "not your booking", "")
			return
		}

		cancelled, err := engine.Cancel(c.Request.Context(), bookingID, actorID)
		if err != nil {
			if availability.IsInvalidTransition(err) {
				utils.JSONError(c, http.StatusConflict, "booking already finalized", err.Error())
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking", err.Error())
			return
		}
		c.JSON(http.StatusOK, cancelled)
	}
}

// UpdateBookingStatusHandler drives confirm/complete transitions. The
// force flag is honored for admins only.
func UpdateBookingStatusHandler(engine availability.Engine, bookings bookingRepo.BookingRepository, artists artistRepo.ArtistRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID := c.Param("id")

		var input struct {
			Status models.BookingStatus `json:"status" binding:"required"`
			Force  bool                 `json:"force"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		booking, err := bookings.GetByID(c.Request.Context(), bookingID)
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
			return
		}
		isAdmin := c.GetString("role") == string(models.RoleAdmin)
		if !isAdmin && !artistOwnsBooking(c, booking, artists) {
			utils.JSONError(c, http.StatusForbidden, "not your booking", "")
			return
		}

		updated, err := engine.UpdateStatus(c.Request.Context(), bookingID, input.Status, input.Force && isAdmin)
		if err != nil {
			if availability.IsInvalidTransition(err) {
				utils.JSONError(c, http.StatusConflict, "invalid status transition", err.Error())
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "failed to update booking", err.Error())
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// ListMyBookingsHandler returns the authenticated customer's bookings.
func ListMyBookingsHandler(bookings bookingRepo.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := bookings.ListByCustomer(c.Request.Context(), c.GetString("userID"))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// ListArtistBookingsHandler returns the bookings of the caller's artist
// profile.
func ListArtistBookingsHandler(bookings bookingRepo.BookingRepository, artists artistRepo.ArtistRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, err := artists.GetByUserID(c.Request.Context(), c.GetString("userID"))
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "no artist profile for this account", err.Error())
			return
		}
		list, err := bookings.ListByArtist(c.Request.Context(), a.ID)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func mayActOnBooking(c *gin.Context, booking *models.Booking, artists artistRepo.ArtistRepository) bool {
	actorID := c.GetString("userID")
	if c.GetString("role") == string(models.RoleAdmin) || booking.CustomerID == actorID {
		return true
	}
	return artistOwnsBooking(c, booking, artists)
}

func artistOwnsBooking(c *gin.Context, booking *models.Booking, artists artistRepo.ArtistRepository) bool {
	a, err := artists.GetByUserID(c.Request.Context(), c.GetString("userID"))
	return err == nil && a.ID == booking.ArtistID
}
