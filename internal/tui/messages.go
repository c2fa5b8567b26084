package tui

import "github.com/matheuskafuri/blogdesk/internal/blogs"

// stateChangedMsg means the view model has a new snapshot.
type stateChangedMsg struct{}

type submitDoneMsg struct {
	article blogs.Article
	err     error
}

type flashMsg struct {
	text string
}

type clearFlashMsg struct {
	seq int
}

type openErrMsg struct {
	err error
}
