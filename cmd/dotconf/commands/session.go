package commands

import (
	"context"

	"github.com/thoreinstein/dotconf/internal/config"
	"github.com/thoreinstein/dotconf/internal/engine"
	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/internal/logging"
	"github.com/thoreinstein/dotconf/internal/render"
	"github.com/thoreinstein/dotconf/internal/schema"
	"github.com/thoreinstein/dotconf/internal/store"
)

// session is everything one invocation reads before it resolves a command.
type session struct {
	schema *schema.Schema
	file   *store.File
	format render.Format
}

// currentSession opens the session for the loaded configuration.
func currentSession(ctx context.Context) (*session, error) {
	cfg := loadedConfig
	if cfg == nil {
		cfg = config.Default()
	}
	return newSession(ctx, cfg)
}

func newSession(ctx context.Context, cfg *config.Config) (*session, error) {
	s, err := cfg.Schema()
	if err != nil {
		return nil, errors.NewUserError(err,
			"Declare options in the config file or point schema_file at a YAML or TOML schema")
	}

	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return nil, errors.NewConfigError(err)
	}

	f, err := store.Open(ctx, cfg.Locations())
	if err != nil {
		return nil, errors.NewConfigError(err)
	}

	logging.FromContext(ctx).Debug("session opened",
		"options", s.Len(),
		"store", f.Target(),
		"pending", f.Bootstrapping())

	return &session{schema: s, file: f, format: format}, nil
}

// resolve runs the resolver against the session's store.
func (s *session) resolve(command engine.Command) []engine.Candidate {
	return engine.Resolve(s.schema, s.file, command)
}

// apply persists the change described by c with a single write.
func (s *session) apply(ctx context.Context, c engine.Candidate) error {
	logger := logging.FromContext(ctx)

	text, ok := c.Next.Encode()
	s.file.Put(c.Option.Name, text, ok)

	if !s.file.Changed() {
		logger.Info("value unchanged, nothing written", "option", c.Option.Name)
		return nil
	}

	if err := s.file.Save(); err != nil {
		return errors.NewSystemError(err, "Check that the env file and its directory are writable")
	}

	logger.Info("env file written",
		"path", s.file.Target(),
		"option", c.Option.Name,
		"pending", s.file.Bootstrapping())
	return nil
}
