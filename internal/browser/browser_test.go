package browser

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://images.pexels.com/photos/1.jpeg", false},
		{"http://localhost:3001/cover.png", false},
		{"file:///etc/passwd", true},
		{"javascript:alert(1)", true},
		{"ftp://example.com", true},
		{"https://", true},
		{"", true},
	}

	for _, tt := range tests {
		err := Validate(tt.url)
		if tt.wantErr && err == nil {
			t.Errorf("Validate(%q): expected error, got nil", tt.url)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("Validate(%q): unexpected error %v", tt.url, err)
		}
	}
}

func TestValidateSchemeSentinel(t *testing.T) {
	err := Validate("ftp://example.com")
	if !errors.Is(err, ErrUnsupportedScheme) {
		t.Errorf("Validate(ftp) = %v, want ErrUnsupportedScheme", err)
	}
}

func TestCommand(t *testing.T) {
	const u = "https://example.com/a.png"
	tests := []struct {
		goos string
		want []string
	}{
		{"darwin", []string{"open", u}},
		{"windows", []string{"rundll32", "url.dll,FileProtocolHandler", u}},
		{"linux", []string{"xdg-open", u}},
		{"freebsd", []string{"xdg-open", u}},
	}
	for _, tt := range tests {
		got := Command(tt.goos, u).Args
		if len(got) != len(tt.want) {
			t.Errorf("Command(%q) args = %q, want %q", tt.goos, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Command(%q) args = %q, want %q", tt.goos, got, tt.want)
				break
			}
		}
	}
}

func TestOpenRejectsBeforeLaunch(t *testing.T) {
	if err := Open("javascript:alert(1)"); !errors.Is(err, ErrUnsupportedScheme) {
		t.Errorf("Open(javascript) = %v, want ErrUnsupportedScheme", err)
	}
}
