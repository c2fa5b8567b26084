package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matheuskafuri/blogdesk/internal/api"
	"github.com/matheuskafuri/blogdesk/internal/blogs"
	"github.com/matheuskafuri/blogdesk/internal/config"
	"github.com/matheuskafuri/blogdesk/internal/logger"
	"github.com/matheuskafuri/blogdesk/internal/query"
)

// session is everything a command needs to talk to the blog API.
type session struct {
	cfg   *config.Config
	log   *logger.Logger
	svc   *blogs.Service
	cache *query.Client

	closers []io.Closer
}

// openSession loads configuration and wires the gateway, service and cache.
// The TUI owns the terminal, so it logs to a file; other commands use stderr.
func openSession(cmd *cobra.Command, logToFile bool) (*session, error) {
	if err := config.LoadDotEnv(flagEnvFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagAPIURL != "" {
		cfg.APIURL = flagAPIURL
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid --api-url: %w", err)
		}
		cfg.APIURL = cfg.APIBaseURL()
	}

	s := &session{cfg: cfg}
	if logToFile {
		l, closer, err := logger.OpenFile(cfg.LogLevel, config.LogPath())
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		s.log = l
		s.closers = append(s.closers, closer)
	} else {
		s.log = logger.New(cfg.LogLevel, cmd.ErrOrStderr())
	}

	client := api.NewClient(cfg.APIBaseURL(), api.WithLogger(s.log))
	s.svc = blogs.NewService(client)
	s.cache = query.New(query.WithLogger(s.log))
	s.log.Debug("session opened", "api_url", client.BaseURL())
	return s, nil
}

func (s *session) Close() {
	s.cache.Close()
	for _, c := range s.closers {
		c.Close()
	}
}

func settled(st query.State) bool {
	return (st.Status == query.Success || st.Status == query.Error) && !st.Fetching
}

// awaitSettled blocks until sub has a finished read and returns it. A failed
// read is returned as the error.
func awaitSettled(ctx context.Context, sub *query.Subscription) (query.State, error) {
	st := sub.State()
	for !settled(st) {
		select {
		case next, ok := <-sub.Updates():
			if !ok {
				return sub.State(), nil
			}
			st = next
		case <-ctx.Done():
			return st, ctx.Err()
		}
	}
	if st.Status == query.Error {
		return st, st.Err
	}
	return st, nil
}
