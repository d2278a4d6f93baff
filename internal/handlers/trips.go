package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/weekend-explore/explore/internal/store"
	"github.com/weekend-explore/explore/internal/utils"
)

type TripHandler struct {
	trips *store.TripStore
}

func NewTripHandler(trips *store.TripStore) *TripHandler {
	return &TripHandler{trips: trips}
}

// CreateTripRequest is the typed contract for trip creation. Numeric
// and date fields are pointers so an absent field can be told apart
// from a zero value.
type CreateTripRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"imageUrl"`
	LocationName string     `json:"locationName"`
	Lat          *float64   `json:"lat"`
	Lng          *float64   `json:"lng"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Budget       *float64   `json:"budget"`
	Tags         []string   `json:"tags"`
	Capacity     *int       `json:"capacity"`
}

// firstMissingField returns the name of the first required field that
// is absent or empty, checked in a fixed order so the error message is
// deterministic.
func (r CreateTripRequest) firstMissingField() string {
	switch {
	case strings.TrimSpace(r.Title) == "":
		return "title"
	case strings.TrimSpace(r.LocationName) == "":
		return "locationName"
	case r.Lat == nil:
		return "lat"
	case r.Lng == nil:
		return "lng"
	case r.StartDate == nil || r.StartDate.IsZero():
		return "startDate"
	case r.EndDate == nil || r.EndDate.IsZero():
		return "endDate"
	}

	return ""
}

func (h *TripHandler) List(ctx *gin.Context) {
	views, err := h.trips.List(ctx.Query("q"))

	if err != nil {
		log.Error().Err(err).Msg("listing trips")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, views)
}

func (h *TripHandler) Get(ctx *gin.Context) {
	view, err := h.trips.Get(ctx.Param("id"))

	if errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if err != nil {
		log.Error().Err(err).Str("trip_id", ctx.Param("id")).Msg("fetching trip")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, view)
}

func (h *TripHandler) Create(ctx *gin.Context) {
	var body CreateTripRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if missing := body.firstMissingField(); missing != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Missing field %s", missing)})
		return
	}

	identity, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	view, err := h.trips.Create(identity.ID, store.NewTrip{
		Title:        body.Title,
		Description:  body.Description,
		ImageURL:     body.ImageURL,
		LocationName: body.LocationName,
		Lat:          *body.Lat,
		Lng:          *body.Lng,
		StartDate:    *body.StartDate,
		EndDate:      *body.EndDate,
		Budget:       body.Budget,
		Tags:         body.Tags,
		Capacity:     body.Capacity,
	})

	if err != nil {
		log.Error().Err(err).Msg("creating trip")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, view)
}

func (h *TripHandler) Join(ctx *gin.Context) {
	identity, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tripID := ctx.Param("id")

	err = h.trips.Join(tripID, identity.ID)

	if errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if err != nil {
		log.Error().Err(err).Str("trip_id", tripID).Msg("joining trip")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
