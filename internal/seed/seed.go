package seed

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/weekend-explore/explore/internal/auth"
	"github.com/weekend-explore/explore/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var demoUsers = []models.User{
	{ID: "seed-org-1", Name: "Asha", Email: "asha@example.com"},
	{ID: "seed-org-2", Name: "Meera", Email: "meera@example.com"},
	{ID: "seed-3", Name: "Rahul", Email: "rahul@example.com"},
	{ID: "seed-4", Name: "Siddharth", Email: "sid@example.com"},
	{ID: "seed-5", Name: "Priya", Email: "priya@example.com"},
}

var titleTemplates = []string{
	"Hiking in {place}", "Evening Yoga at {place}", "Tech Talk: {topic} at {place}",
	"Pottery Workshop in {place}", "Board Game Night at {place}", "Photography Walk in {place}",
	"Startup Networking at {place}", "Art & Wine Social in {place}", "Book Club Meetup at {place}",
	"Stargazing at {place}", "Gourmet Cooking Class in {place}", "Cycling Tour through {place}",
}

var places = []struct {
	Name     string
	Lat, Lng float64
}{
	{"Nandi Hills", 13.3702, 77.6835},
	{"Cubbon Park", 12.9733, 77.5910},
	{"Lalbagh", 12.9507, 77.5844},
	{"HSR Layout", 12.9128, 77.6388},
	{"Indiranagar", 12.9719, 77.6412},
	{"Koramangala", 12.9352, 77.6245},
	{"Banaswadi", 13.0012, 77.6455},
	{"Jayanagar", 12.9250, 77.5938},
}

var topics = []string{
	"React Native", "AI Safety", "Sustainable Living",
	"Digital Marketing", "Investment 101", "Creative Writing",
}

var tagsPool = []string{
	"nature", "fitness", "tech", "creativity",
	"social", "food", "education", "outdoors",
}

// Run populates the store with demo users and trips. It is a no-op
// when any trips already exist. Demo users carry no password hash and
// cannot log in.
func Run(conn *gorm.DB) error {
	var count int64

	if err := conn.Model(&models.Trip{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	log.Info().Msg("seeding demo events")

	for i := range demoUsers {
		user := demoUsers[i]
		user.AvatarURL = auth.AvatarURL(user.Email)

		if err := conn.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error; err != nil {
			return err
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 0; i < 100; i++ {
		place := places[rng.Intn(len(places))]
		title := strings.NewReplacer(
			"{place}", place.Name,
			"{topic}", topics[rng.Intn(len(topics))],
		).Replace(titleTemplates[rng.Intn(len(titleTemplates))])

		start := time.Now().AddDate(0, 0, rng.Intn(30)).Truncate(time.Hour)
		budget := float64(rng.Intn(5000) + 500)
		capacity := rng.Intn(20) + 5

		tags, err := json.Marshal([]string{
			tagsPool[rng.Intn(len(tagsPool))],
			tagsPool[rng.Intn(len(tagsPool))],
		})

		if err != nil {
			return err
		}

		organizer := demoUsers[rng.Intn(len(demoUsers))]

		trip := models.Trip{
			ID:           uuid.NewString(),
			Title:        title,
			Description:  fmt.Sprintf("Join us for %s. It's going to be an amazing weekend activity!", strings.ToLower(title)),
			LocationName: place.Name,
			Lat:          place.Lat,
			Lng:          place.Lng,
			StartDate:    start,
			EndDate:      start.Add(4 * time.Hour),
			Budget:       &budget,
			Tags:         datatypes.JSON(tags),
			Capacity:     &capacity,
			OrganizerID:  organizer.ID,
		}

		if err := conn.Create(&trip).Error; err != nil {
			return err
		}

		attendees := []models.TripAttendee{{TripID: trip.ID, UserID: organizer.ID}}

		// A few extra attendees besides the organizer.
		for _, other := range demoUsers {
			if other.ID != organizer.ID && rng.Intn(2) == 0 {
				attendees = append(attendees, models.TripAttendee{TripID: trip.ID, UserID: other.ID})
			}
		}

		if err := conn.Clauses(clause.OnConflict{DoNothing: true}).Create(&attendees).Error; err != nil {
			return err
		}
	}

	log.Info().Msg("seeding complete")

	return nil
}
