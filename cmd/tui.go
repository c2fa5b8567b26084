package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matheuskafuri/blogdesk/internal/tui"
	"github.com/matheuskafuri/blogdesk/internal/viewmodel"
)

func runTUI(cmd *cobra.Command, args []string) error {
	route, err := resolveRoute(flagRoute)
	if err != nil {
		return err
	}

	s, err := openSession(cmd, true)
	if err != nil {
		return err
	}
	defer s.Close()

	vm := viewmodel.New(s.cache, s.svc, route, viewmodel.WithLogger(s.log))
	defer vm.Close()

	s.log.Info("starting tui", "route", route, "api_url", s.cfg.APIBaseURL())
	return tui.Run(tui.RunOpts{
		Model:        vm,
		SkeletonRows: s.cfg.GetSkeletonRows(),
		ListWidth:    s.cfg.ListWidthRatio(),
	})
}

// resolveRoute normalises the --route flag and rejects paths the shell has no pane for.
func resolveRoute(raw string) (string, error) {
	r := viewmodel.ParseRoute(raw)
	trimmed := strings.Trim(strings.TrimSpace(raw), "/")
	if r.Path == viewmodel.HomePath && trimmed != "" {
		return "", fmt.Errorf("unknown route %q (want /, /new or /blogs/<id>)", raw)
	}
	return r.Path, nil
}
