package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/LabsDAO/data-gamify-network/internal/client/config"
	"github.com/LabsDAO/data-gamify-network/internal/client/credentials"
	"github.com/LabsDAO/data-gamify-network/internal/client/identity"
	"github.com/LabsDAO/data-gamify-network/internal/client/kvstore"
	"github.com/LabsDAO/data-gamify-network/internal/filex"
	"github.com/LabsDAO/data-gamify-network/internal/logging"
	"github.com/LabsDAO/data-gamify-network/internal/notify"
	"github.com/LabsDAO/data-gamify-network/internal/tracking"
)

const stateDirName = ".data-gamify"

// App wires the uploader CLI: local state, credential resolvers, mode
// flags, the tracking service, and the interactive command loop.
type App struct {
	config    *config.Config
	store     kvstore.Store
	awsCreds  *credentials.Resolver[credentials.AWSCredentials]
	oortCreds *credentials.Resolver[credentials.OORTCredentials]
	modes     *credentials.Modes
	tracker   *tracking.Service
	backend   *tracking.Store
	notifier  notify.Notifier
	logger    logging.Logger
	userID    string
	reader    *bufio.Reader
	out       io.Writer
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	statePath := c.StatePath
	if statePath == "" {
		dir, err := filex.EnsureSubDir(stateDirName)
		if err != nil {
			return nil, err
		}
		statePath = filepath.Join(dir, "state.db")
	}

	store, err := kvstore.OpenSQLite(ctx, statePath)
	if err != nil {
		return nil, err
	}

	modes := credentials.NewModes(store)
	if err := modes.ForceReal(ctx); err != nil {
		return nil, err
	}

	// The uploads backend is optional; without it uploads still score
	// points, they just are not stored durably.
	var backend *tracking.Store
	var repo tracking.Repository
	if c.UploadsDSN != "" {
		backend, err = tracking.NewStore(ctx, c.UploadsDSN)
		if err != nil {
			logger.Warn(ctx, "uploads backend unavailable, tracking disabled", "err", err)
		} else {
			repo = backend.Uploads()
		}
	}

	userID := "anonymous"
	if c.AuthToken != "" {
		id, err := identity.UserIDFromToken(c.AuthToken)
		if err != nil {
			logger.Warn(ctx, "cannot read user id from auth token", "err", err)
		} else {
			userID = id
		}
	}

	return &App{
		config:    c,
		store:     store,
		awsCreds:  credentials.NewAWSResolver(store),
		oortCreds: credentials.NewOORTResolver(store),
		modes:     modes,
		tracker:   tracking.NewService(repo, logger),
		backend:   backend,
		notifier:  notify.NewWriterNotifier(os.Stdout),
		logger:    logger,
		userID:    userID,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	if a.backend != nil {
		_ = a.backend.Close()
	}
	_ = a.store.Close()
}
