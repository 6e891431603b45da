package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/wildwatch/wildwatch/internal/logger"
	"github.com/wildwatch/wildwatch/internal/models"
)

// InterestReader counts and enumerates same-city users holding a species.
type InterestReader interface {
	CountByCity(ctx context.Context, speciesID, cityID int64) (int, error)
	GetCityListers(ctx context.Context, speciesID, cityID int64) ([]models.Recipient, error)
}

// ProfileReader resolves a user together with its city and country.
type ProfileReader interface {
	GetProfile(ctx context.Context, userID int64) (*models.Profile, error)
}

// SpeciesByIDReader resolves a species by id.
type SpeciesByIDReader interface {
	GetByID(ctx context.Context, speciesID int64) (*models.SpeciesDB, error)
}

// MailSender delivers one plain-text message to a single recipient.
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

const notificationSubject = "Species match in your city"

// MatchService decides whether a species has reached critical mass in a city
// and fans out the notification when it has. The threshold check is an exact
// equality: the match fires once, when the matchNum-th user of a city adds
// the species, and never again for later adds.
type MatchService struct {
	lists       InterestReader
	users       ProfileReader
	species     SpeciesByIDReader
	sender      MailSender
	kafkaWriter KafkaWriter
	matchNum    int
}

// NewMatchService creates a new MatchService with the configured threshold.
func NewMatchService(
	lists InterestReader,
	users ProfileReader,
	species SpeciesByIDReader,
	sender MailSender,
	kafkaWriter KafkaWriter,
	matchNum int,
) *MatchService {
	return &MatchService{
		lists:       lists,
		users:       users,
		species:     species,
		sender:      sender,
		kafkaWriter: kafkaWriter,
		matchNum:    matchNum,
	}
}

// CountInterested counts how many users of the city hold the species.
func (svc *MatchService) CountInterested(ctx context.Context, speciesID, cityID int64) (int, error) {
	return svc.lists.CountByCity(ctx, speciesID, cityID)
}

// IsMatch reports whether the city has exactly the configured number of users
// holding the species. Exact equality, not at-least: the (matchNum+1)-th add
// must not re-fire the one-shot trigger.
func (svc *MatchService) IsMatch(ctx context.Context, speciesID, cityID int64) (bool, error) {
	count, err := svc.CountInterested(ctx, speciesID, cityID)
	if err != nil {
		logger.Log.Errorw("failed to count interested users", "speciesID", speciesID, "cityID", cityID, "err", err)
		return false, err
	}
	return count == svc.matchNum, nil
}

// BuildNotification composes the match message for the triggering user,
// naming every other same-city user holding the species.
func (svc *MatchService) BuildNotification(ctx context.Context, speciesID, userID int64) (string, error) {
	profile, err := svc.users.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", ErrUserDoesNotExist
	}

	species, err := svc.species.GetByID(ctx, speciesID)
	if err != nil {
		return "", err
	}
	if species == nil {
		return "", ErrSpeciesNotFound
	}

	listers, err := svc.lists.GetCityListers(ctx, speciesID, profile.CityID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		"Congratulations! You and %d other people in %s, %s have %s in their lists! Here is a list of the other users:",
		svc.matchNum-1, profile.City, profile.Country, species.Name,
	)
	for _, r := range listers {
		if r.UserID == userID {
			continue
		}
		fmt.Fprintf(&b, "\n%s (%s)", r.Username, r.Email)
	}

	return b.String(), nil
}

// CheckAndNotify runs the threshold check after a list add and, when the match
// fires, mails every other same-city lister and publishes a match event.
// Delivery and publishing are best-effort: their failures are logged and never
// roll back the add that triggered the match.
func (svc *MatchService) CheckAndNotify(ctx context.Context, speciesID, userID int64) (string, bool, error) {
	profile, err := svc.users.GetProfile(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to resolve profile", "userID", userID, "err", err)
		return "", false, err
	}
	if profile == nil {
		return "", false, ErrUserDoesNotExist
	}

	matched, err := svc.IsMatch(ctx, speciesID, profile.CityID)
	if err != nil {
		return "", false, err
	}
	if !matched {
		return "", false, nil
	}

	notification, err := svc.BuildNotification(ctx, speciesID, userID)
	if err != nil {
		logger.Log.Errorw("failed to build notification", "speciesID", speciesID, "userID", userID, "err", err)
		return "", false, err
	}

	listers, err := svc.lists.GetCityListers(ctx, speciesID, profile.CityID)
	if err != nil {
		logger.Log.Errorw("failed to enumerate listers", "speciesID", speciesID, "err", err)
		return "", false, err
	}

	usernames := make([]string, 0, len(listers))
	for _, r := range listers {
		usernames = append(usernames, r.Username)
		if r.UserID == userID {
			continue
		}
		if svc.sender == nil {
			logger.Log.Warnw("mail sender not configured, skipping notification", "to", r.Email)
			continue
		}
		if err := svc.sender.Send(ctx, r.Email, notificationSubject, notification); err != nil {
			logger.Log.Errorw("failed to send notification mail", "to", r.Email, "error", err)
		}
	}

	species, err := svc.species.GetByID(ctx, speciesID)
	if err != nil || species == nil {
		logger.Log.Errorw("failed to resolve species for match event", "speciesID", speciesID, "error", err)
		return notification, true, nil
	}

	event := models.MatchEvent{
		EventID:     uuid.NewString(),
		SpeciesID:   speciesID,
		SpeciesName: species.Name,
		CityID:      profile.CityID,
		CityName:    profile.City,
		CountryName: profile.Country,
		Usernames:   usernames,
		Timestamp:   time.Now().Unix(),
	}
	svc.publishMatch(ctx, event)

	return notification, true, nil
}

// publishMatch publishes a match event to Kafka.
func (svc *MatchService) publishMatch(ctx context.Context, event models.MatchEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal match event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish match event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Match event published to Kafka", "event_id", event.EventID, "species", event.SpeciesName, "city", event.CityName)
	}
}
