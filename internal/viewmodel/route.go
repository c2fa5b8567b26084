package viewmodel

import "strings"

type Mode int

const (
	ModeList Mode = iota
	ModeDetail
	ModeCompose
)

func (m Mode) String() string {
	switch m {
	case ModeDetail:
		return "detail"
	case ModeCompose:
		return "compose"
	default:
		return "list"
	}
}

const (
	HomePath    = "/"
	ComposePath = "/new"
	blogsPrefix = "/blogs/"
)

// Route is a parsed in-app path.
type Route struct {
	Path     string
	Mode     Mode
	ActiveID string
}

// ParseRoute maps a path onto a pane mode. Unknown paths fall back to home.
// The active id is the last segment of a /blogs/ path.
func ParseRoute(path string) Route {
	path = strings.TrimSpace(path)
	if path == "" {
		return Route{Path: HomePath}
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = HomePath
		}
	}

	switch {
	case path == ComposePath:
		return Route{Path: path, Mode: ModeCompose}
	case strings.HasPrefix(path, blogsPrefix):
		id := path[strings.LastIndex(path, "/")+1:]
		return Route{Path: path, Mode: ModeDetail, ActiveID: id}
	default:
		return Route{Path: HomePath}
	}
}

// DetailPath is the route of the article with id.
func DetailPath(id string) string {
	return blogsPrefix + id
}
