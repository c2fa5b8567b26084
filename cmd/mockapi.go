package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matheuskafuri/blogdesk/internal/blogs"
	"github.com/matheuskafuri/blogdesk/internal/config"
	"github.com/matheuskafuri/blogdesk/internal/logger"
	"github.com/matheuskafuri/blogdesk/internal/mockapi"
)

var (
	flagAddr    string
	flagLatency time.Duration
	flagEmpty   bool
)

var mockAPICmd = &cobra.Command{
	Use:   "mock-api",
	Short: "Serve an in-memory blog API for local use",
	Long: `Serve GET /blogs, GET /blogs/:id and POST /blogs from memory, seeded with a few
sample articles. Point blogdesk at it with --api-url or BLOGDESK_API_URL.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		level := os.Getenv(config.EnvLogLevel)
		if level == "" {
			level = "debug"
		}
		log := logger.New(level, cmd.ErrOrStderr())

		var seed []blogs.Article
		if !flagEmpty {
			var err error
			if seed, err = mockapi.Seed(); err != nil {
				return err
			}
		}

		srv := mockapi.New(mockapi.NewStore(seed),
			mockapi.WithLogger(log),
			mockapi.WithLatency(flagLatency),
		)
		if err := srv.ListenAndServe(cmd.Context(), flagAddr); err != nil {
			return fmt.Errorf("mock api: %w", err)
		}
		log.Info("mock api stopped")
		return nil
	},
}

func init() {
	mockAPICmd.Flags().StringVar(&flagAddr, "addr", ":3001", "listen address")
	mockAPICmd.Flags().DurationVar(&flagLatency, "latency", 0, "delay every response, e.g. 500ms")
	mockAPICmd.Flags().BoolVar(&flagEmpty, "empty", false, "start with no articles")
}
