package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/weekend-explore/explore/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TripStore is the query layer for trips and their attendee rosters.
type TripStore struct {
	db *gorm.DB
}

func NewTripStore(db *gorm.DB) *TripStore {
	return &TripStore{db: db}
}

// Attendee is one roster entry on a trip view.
type Attendee struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TripView is a trip as served to clients: the stored row plus its
// deserialized tags and full attendee roster.
type TripView struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"imageUrl"`
	LocationName string     `json:"locationName"`
	Lat          float64    `json:"lat"`
	Lng          float64    `json:"lng"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      time.Time  `json:"endDate"`
	Budget       *float64   `json:"budget"`
	Tags         []string   `json:"tags"`
	Capacity     *int       `json:"capacity"`
	OrganizerID  string     `json:"organizerId"`
	Attendees    []Attendee `json:"attendees"`
}

// NewTrip carries the validated fields for trip creation.
type NewTrip struct {
	Title        string
	Description  string
	ImageURL     string
	LocationName string
	Lat          float64
	Lng          float64
	StartDate    time.Time
	EndDate      time.Time
	Budget       *float64
	Tags         []string
	Capacity     *int
}

type tripRow struct {
	models.Trip
	AttendeesJSON string
}

// attendeesSubquery builds the correlated JSON aggregation that
// attaches the roster in the same query as the trip rows. The inner
// select orders by membership creation time so the organizer always
// comes first and later joins append.
func (s *TripStore) attendeesSubquery() string {
	switch s.db.Dialector.Name() {
	case "sqlite":
		return `(SELECT COALESCE(json_group_array(json_object('id', a.id, 'name', a.name, 'email', a.email)), '[]')
			FROM (SELECT u.id, u.name, u.email
			      FROM trip_attendees ta JOIN users u ON u.id = ta.user_id
			      WHERE ta.trip_id = t.id ORDER BY ta.created_at) a)`
	default:
		return `(SELECT COALESCE(json_agg(json_build_object('id', a.id, 'name', a.name, 'email', a.email)), '[]')
			FROM (SELECT u.id, u.name, u.email
			      FROM trip_attendees ta JOIN users u ON u.id = ta.user_id
			      WHERE ta.trip_id = t.id ORDER BY ta.created_at) a)`
	}
}

// List returns all trips ordered by ascending start date. A non-empty
// query keeps only trips whose title, location name, or serialized tag
// list contains it, case-insensitively.
func (s *TripStore) List(query string) ([]TripView, error) {
	var rows []tripRow

	base := fmt.Sprintf(`SELECT t.*, %s AS attendees_json FROM trips t`, s.attendeesSubquery())

	var err error

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		like := "%" + q + "%"
		err = s.db.Raw(base+`
			WHERE lower(t.title) LIKE ?
			   OR lower(t.location_name) LIKE ?
			   OR lower(CAST(t.tags AS TEXT)) LIKE ?
			ORDER BY t.start_date ASC`, like, like, like).Scan(&rows).Error
	} else {
		err = s.db.Raw(base + ` ORDER BY t.start_date ASC`).Scan(&rows).Error
	}

	if err != nil {
		return nil, err
	}

	views := make([]TripView, 0, len(rows))

	for _, row := range rows {
		view, err := row.toView()
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

// Get returns a single trip in the same shape as one List element.
func (s *TripStore) Get(id string) (*TripView, error) {
	var row tripRow

	result := s.db.Raw(fmt.Sprintf(
		`SELECT t.*, %s AS attendees_json FROM trips t WHERE t.id = ?`,
		s.attendeesSubquery()), id).Scan(&row)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	view, err := row.toView()

	if err != nil {
		return nil, err
	}

	return &view, nil
}

// Create persists the trip and the organizer's membership in one
// transaction, then re-reads the canonical row so the response can
// never diverge from storage.
func (s *TripStore) Create(organizerID string, fields NewTrip) (*TripView, error) {
	tags := fields.Tags

	if tags == nil {
		tags = []string{}
	}

	tagsJSON, err := json.Marshal(tags)

	if err != nil {
		return nil, err
	}

	trip := models.Trip{
		ID:           uuid.NewString(),
		Title:        fields.Title,
		Description:  fields.Description,
		ImageURL:     fields.ImageURL,
		LocationName: fields.LocationName,
		Lat:          fields.Lat,
		Lng:          fields.Lng,
		StartDate:    fields.StartDate,
		EndDate:      fields.EndDate,
		Budget:       fields.Budget,
		Tags:         datatypes.JSON(tagsJSON),
		Capacity:     fields.Capacity,
		OrganizerID:  organizerID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&trip).Error; err != nil {
			return err
		}

		// The organizer is always the first attendee.
		return tx.Create(&models.TripAttendee{
			TripID: trip.ID,
			UserID: organizerID,
		}).Error
	})

	if err != nil {
		return nil, err
	}

	return s.Get(trip.ID)
}

// Join records userID as attending tripID. Joining twice is a no-op:
// the insert lands on the composite primary key with DO NOTHING, so a
// duplicate, even one racing a concurrent Join, is absorbed silently.
func (s *TripStore) Join(tripID, userID string) error {
	var count int64

	if err := s.db.Model(&models.Trip{}).Where("id = ?", tripID).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return ErrNotFound
	}

	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.TripAttendee{
		TripID: tripID,
		UserID: userID,
	}).Error
}

func (r tripRow) toView() (TripView, error) {
	tags := []string{}

	if len(r.Tags) > 0 {
		if err := json.Unmarshal(r.Tags, &tags); err != nil {
			return TripView{}, fmt.Errorf("decode tags for trip %s: %w", r.ID, err)
		}
	}

	attendees := []Attendee{}

	if r.AttendeesJSON != "" {
		if err := json.Unmarshal([]byte(r.AttendeesJSON), &attendees); err != nil {
			return TripView{}, fmt.Errorf("decode attendees for trip %s: %w", r.ID, err)
		}
	}

	return TripView{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		LocationName: r.LocationName,
		Lat:          r.Lat,
		Lng:          r.Lng,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Budget:       r.Budget,
		Tags:         tags,
		Capacity:     r.Capacity,
		OrganizerID:  r.OrganizerID,
		Attendees:    attendees,
	}, nil
}
