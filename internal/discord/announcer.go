package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/FarmEconomy_Go/internal/crop"
	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/event"
	"github.com/osse101/FarmEconomy_Go/internal/season"
)

// embedSender is the slice of *discordgo.Session the announcer needs
type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// SeasonAnnouncer posts season changes to a Discord channel
type SeasonAnnouncer struct {
	session   embedSender
	channelID string
	closer    func() error
}

// NewSeasonAnnouncer creates an announcer backed by a bot token session.
// The session only uses the REST API, so no gateway connection is opened.
func NewSeasonAnnouncer(token, channelID string) (*SeasonAnnouncer, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateSession, err)
	}
	return newSeasonAnnouncer(s, channelID), nil
}

func newSeasonAnnouncer(s *discordgo.Session, channelID string) *SeasonAnnouncer {
	return &SeasonAnnouncer{session: s, channelID: channelID, closer: s.Close}
}

// Subscribe registers the announcer for season.changed
func (a *SeasonAnnouncer) Subscribe(bus event.Bus) {
	bus.Subscribe(event.SeasonChanged, a.handleSeasonChanged)
}

// Close releases the session
func (a *SeasonAnnouncer) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer()
}

// handleSeasonChanged logs delivery failures and always returns nil
func (a *SeasonAnnouncer) handleSeasonChanged(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[season.ChangedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgPayloadDecodeFailed, "event_type", evt.Type, "error", err)
		return nil
	}

	if _, err := a.session.ChannelMessageSendEmbed(a.channelID, SeasonEmbed(p)); err != nil {
		slog.Error(LogMsgAnnounceFailed, "channel_id", a.channelID, "season", p.Season.String(), "error", err)
		return nil
	}

	slog.Info(LogMsgSeasonAnnounced, "channel_id", a.channelID, "season", p.Season.String(), "days_passed", p.DaysPassed)
	return nil
}

// SeasonEmbed renders a season change
func SeasonEmbed(p season.ChangedPayloadV1) *discordgo.MessageEmbed {
	name := p.SeasonName
	if name == "" {
		name = titleCase(p.Season.String())
	}

	title := fmt.Sprintf(EmbedTitleSeasonChanged, seasonIcon(p.Season), name)
	footer := EmbedFooterCalendar
	if p.Manual {
		footer = EmbedFooterManual
	}

	ts := time.Unix(p.Timestamp, 0).UTC()
	if p.Timestamp == 0 {
		ts = time.Now().UTC()
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf(EmbedDescSeasonChanged, name, p.DaysPassed),
		Color:       seasonColor(p.Season),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   EmbedFieldPlantable,
				Value:  plantableCrops(p.Season),
				Inline: false,
			},
		},
		Timestamp: ts.Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: footer},
	}
}

func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}

func plantableCrops(s domain.Season) string {
	var names []string
	for _, c := range crop.All() {
		if c.PlantableIn(s) {
			names = append(names, titleCase(c.Type.String()))
		}
	}
	if len(names) == 0 {
		return EmbedValueNothingPlantable
	}
	return strings.Join(names, ", ")
}

func seasonIcon(s domain.Season) string {
	switch s {
	case domain.SeasonSpring:
		return "🌱"
	case domain.SeasonSummer:
		return "☀️"
	case domain.SeasonFall:
		return "🍂"
	case domain.SeasonWinter:
		return "❄️"
	default:
		return "📅"
	}
}

func seasonColor(s domain.Season) int {
	switch s {
	case domain.SeasonSpring:
		return 0x77DD77
	case domain.SeasonSummer:
		return 0xFFD700
	case domain.SeasonFall:
		return 0xD2691E
	case domain.SeasonWinter:
		return 0xADD8E6
	default:
		return 0x808080
	}
}
