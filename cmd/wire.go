package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/viper"

	apiadapter "github.com/mfekete/roomctl/internal/adapters/api"
	"github.com/mfekete/roomctl/internal/adapters/render/calview"
	"github.com/mfekete/roomctl/internal/adapters/render/listing"
	chainstore "github.com/mfekete/roomctl/internal/adapters/token/chain"
	"github.com/mfekete/roomctl/internal/application"
	"github.com/mfekete/roomctl/internal/config"
	"github.com/mfekete/roomctl/internal/domain"
	"github.com/mfekete/roomctl/internal/ports"
)

type app struct {
	cfg     config.Config
	session *application.Session
	booking *application.BookingService
	api     ports.BookingAPI
	creds   ports.CredentialStore
	clock   ports.Clock
	logger  *slog.Logger
	now     func() time.Time

	identityRenderer  func(*domain.Identity) (string, error)
	roomsRenderer     func([]domain.Room) (string, error)
	timeslotsRenderer func(string, []domain.Timeslot) (string, error)
	bookingsRenderer  func(string, []domain.Booking) (string, error)
	logsRenderer      func([]domain.BookingLog) (string, error)
	monthRenderer     func(time.Time, []domain.Booking, calview.RenderOptions) (string, error)
	weekRenderer      func(time.Time, []domain.Slot) (string, error)
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	creds, err := chainstore.NewPassFirstWithFileFallback(cfg.PassEntry, cfg.TokenPath)
	if err != nil {
		return nil, fmt.Errorf("wire credential store chain: %w", err)
	}

	logger := newLogger()
	client := apiadapter.NewClient(cfg.BaseURL, &http.Client{Timeout: 30 * time.Second}, creds, logger)
	clock := ports.SystemClock{}

	session := application.NewSession(client, creds, logger)
	// A rejected token means the session is over, however far into a command
	// the rejection lands.
	client.SetUnauthorizedHook(session.Invalidate)

	return &app{
		cfg:     cfg,
		session: session,
		booking: application.NewBookingService(client, logger),
		api:     client,
		creds:   creds,
		clock:   clock,
		logger:  logger,
		now:     clock.Now,

		identityRenderer:  listing.RenderIdentity,
		roomsRenderer:     listing.RenderRooms,
		timeslotsRenderer: listing.RenderTimeslots,
		bookingsRenderer:  listing.RenderBookings,
		logsRenderer:      listing.RenderBookingLogs,
		monthRenderer:     calview.RenderMonth,
		weekRenderer:      calview.RenderWeek,
	}, nil
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("ROOMCTL_DEBUG") != "" {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
