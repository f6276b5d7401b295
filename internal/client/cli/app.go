package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"userdeck/internal/client/api"
	"userdeck/internal/client/config"
	"userdeck/internal/client/models"
	"userdeck/internal/client/repositories/sessionstore"
	"userdeck/internal/client/services"
	"userdeck/internal/client/upload"
	"userdeck/internal/logging"
)

// App holds the wired-up client: configuration, services and the in-memory
// session mirror. The durable session lives in the local database; App keeps
// a copy so the token source and the prompt don't hit the store on every
// request.
type App struct {
	config       *config.Config
	logger       logging.Logger
	sessions     services.SessionService
	directory    services.DirectoryService
	registration services.RegistrationService

	session models.Session
	db      *sql.DB
	reader  *bufio.Reader
}

// NewApp builds the client from a loaded configuration: opens (and migrates)
// the session database, constructs the API client and the services on top of
// it, and selects the image uploader named by the config.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger, err := newLogger(c.LogFormat)
	if err != nil {
		return nil, err
	}

	db, err := sessionstore.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		logger.Error(ctx, "initializing session database", "error", err)
		return nil, err
	}

	app := &App{config: c, logger: logger, db: db, reader: bufio.NewReader(os.Stdin)}

	// The API client authorizes requests with the in-memory session token;
	// the closure breaks the api <-> services construction cycle.
	apiClient := api.NewHTTPClient(c.BackendURL, c.RequestTimeout.Duration, api.TokenSourceFunc(func(ctx context.Context) string {
		return app.session.Token
	}))

	app.sessions = services.NewSessionService(apiClient, db)
	app.directory = services.NewDirectoryService(apiClient)
	app.registration = services.NewRegistrationService(apiClient, upload.NewPipeline(newUploader(c)))

	return app, nil
}

func newLogger(format string) (logging.Logger, error) {
	if format == "json" {
		return logging.NewJSONLogger()
	}
	return logging.NewTextLogger(os.Stderr), nil
}

func newUploader(c *config.Config) upload.Uploader {
	if c.Provider == config.ProviderS3 {
		return upload.NewS3Uploader(upload.S3Config{
			BaseEndpoint:  c.S3BaseEndpoint,
			Region:        c.S3Region,
			Bucket:        c.S3Bucket,
			AccessKey:     c.S3AccessKey,
			SecretKey:     c.S3SecretKey,
			PublicBaseURL: c.S3PublicBaseURL,
		})
	}
	return upload.NewHostedUploader(c.UploadEndpoint, c.CloudName, c.UploadPreset)
}

// Run restores the persisted session and starts the REPL. It blocks until
// the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.session = a.sessions.Current(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated
}
