// Package browser hands article URLs (cover images, author avatars) to the
// system browser.
package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

var ErrUnsupportedScheme = errors.New("only http and https URLs can be opened")

// Validate checks that rawURL is an absolute http(s) URL with a host.
func Validate(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: got %q", ErrUnsupportedScheme, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid URL %q: missing host", rawURL)
	}
	return nil
}

// Command builds the launcher for goos without running it.
func Command(goos, rawURL string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", rawURL)
	case "windows":
		// rundll32 avoids handing the URL to a shell.
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		return exec.Command("xdg-open", rawURL)
	}
}

func Open(rawURL string) error {
	if err := Validate(rawURL); err != nil {
		return err
	}
	if err := Command(runtime.GOOS, rawURL).Start(); err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}
	return nil
}
