package tui

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matheuskafuri/blogdesk/internal/api"
	"github.com/matheuskafuri/blogdesk/internal/blogs"
	"github.com/matheuskafuri/blogdesk/internal/mockapi"
	"github.com/matheuskafuri/blogdesk/internal/query"
	"github.com/matheuskafuri/blogdesk/internal/viewmodel"
)

type testApp struct {
	*App
	opened []string
}

func newTestApp(t *testing.T, path string) *testApp {
	t.Helper()
	store := mockapi.NewStore([]blogs.Article{
		{ID: "a", Title: "First post", Category: []string{"FINANCE"}, CoverImage: "https://example.com/a.jpg", Content: "hello", Date: "2024-05-30T00:00:00Z"},
		{ID: "b", Title: "Second post", Category: []string{"TECH"}, Content: "world", Date: "2024-05-31T23:00:00Z"},
	})
	srv := httptest.NewServer(mockapi.New(store).Handler())
	t.Cleanup(srv.Close)

	cache := query.New()
	t.Cleanup(cache.Close)
	vm := viewmodel.New(cache, blogs.NewService(api.NewClient(srv.URL)), path)
	t.Cleanup(vm.Close)

	ta := &testApp{}
	ta.App = NewApp(RunOpts{
		Model: vm,
		Open: func(u string) error {
			ta.opened = append(ta.opened, u)
			return nil
		},
		Now: func() time.Time { return testNow },
	})
	ta.Update(tea.WindowSizeMsg{Width: 160, Height: 48})
	return ta
}

// settle applies view model changes until cond holds.
func (ta *testApp) settle(t *testing.T, cond func(viewmodel.Snapshot) bool) {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for !cond(ta.snap) {
		select {
		case <-ta.vm.Changes():
			ta.Update(stateChangedMsg{})
		case <-timeout:
			t.Fatalf("timed out, snapshot %+v", ta.snap)
		}
	}
}

func listReady(s viewmodel.Snapshot) bool {
	return s.List.Status == viewmodel.ListReady && !s.List.Refreshing
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func (ta *testApp) press(s string) tea.Cmd {
	_, cmd := ta.Update(key(s))
	return cmd
}

func TestOpenArticleFromList(t *testing.T) {
	ta := newTestApp(t, "/")
	ta.settle(t, listReady)

	ta.press("j")
	assert.Equal(t, 1, ta.cursor)
	ta.press("enter")

	assert.Equal(t, "/blogs/b", ta.snap.Route.Path)
	assert.Equal(t, focusDetail, ta.focus)
	ta.settle(t, func(s viewmodel.Snapshot) bool { return s.Detail.Status == viewmodel.DetailReady })
	assert.Contains(t, ta.View(), "Second post")

	ta.press("esc")
	assert.Equal(t, "/", ta.snap.Route.Path)
	assert.Equal(t, focusList, ta.focus)
}

func TestStartOnDetailSelectsArticle(t *testing.T) {
	ta := newTestApp(t, "/blogs/b")
	ta.settle(t, listReady)
	assert.Equal(t, 1, ta.cursor)
	assert.Equal(t, focusDetail, ta.focus)
}

func TestDetailScrollStopsAtEnd(t *testing.T) {
	ta := newTestApp(t, "/blogs/a")
	ta.settle(t, func(s viewmodel.Snapshot) bool { return s.Detail.Status == viewmodel.DetailReady })
	ta.Update(tea.WindowSizeMsg{Width: 160, Height: 8})
	require.Equal(t, focusDetail, ta.focus)

	limit := ta.maxDetailScroll()
	require.Greater(t, limit, 0)
	for i := 0; i < limit+10; i++ {
		ta.press("j")
	}
	assert.Equal(t, limit, ta.detailScroll)
	assert.Contains(t, ta.View(), "hello")

	ta.press("k")
	assert.Equal(t, limit-1, ta.detailScroll)
}

func TestShareAndOpenCover(t *testing.T) {
	ta := newTestApp(t, "/blogs/a")
	ta.settle(t, func(s viewmodel.Snapshot) bool { return s.Detail.Status == viewmodel.DetailReady })

	msg := ta.press("s")()
	assert.Equal(t, flashMsg{text: "Share link: /blogs/a"}, msg)
	ta.Update(msg)
	assert.Contains(t, ta.View(), "Share link: /blogs/a")

	msg = ta.press("o")()
	assert.Equal(t, flashMsg{text: "Opened cover image"}, msg)
	assert.Equal(t, []string{"https://example.com/a.jpg"}, ta.opened)
}

func TestOpenErrorShowsInStatus(t *testing.T) {
	ta := newTestApp(t, "/")
	ta.Update(openErrMsg{err: errors.New("no browser")})
	assert.Contains(t, ta.View(), "no browser")

	ta.press("j")
	assert.NoError(t, ta.err)
}

func TestComposeValidation(t *testing.T) {
	ta := newTestApp(t, "/")
	ta.settle(t, listReady)

	ta.press("n")
	require.Equal(t, modeCompose, ta.currentMode())
	assert.Equal(t, fieldTitle, ta.form.focus)

	cmd := ta.press("ctrl+s")
	require.NotNil(t, cmd)
	done, ok := cmd().(submitDoneMsg)
	require.True(t, ok)
	var verr *blogs.ValidationError
	require.True(t, errors.As(done.err, &verr))

	ta.Update(done)
	view := ta.View()
	assert.Contains(t, view, "Please fill in: title, description, coverImage, content")
	assert.Equal(t, "/new", ta.snap.Route.Path)

	ta.press("esc")
	assert.Equal(t, modeBrowse, ta.currentMode())
}

func TestComposePublishes(t *testing.T) {
	ta := newTestApp(t, "/new")
	ta.settle(t, listReady)

	ta.form.inputs[fieldTitle].SetValue("Fresh post")
	ta.form.inputs[fieldCategories].SetValue("career, skills")
	ta.form.inputs[fieldDescription].SetValue("d")
	ta.form.inputs[fieldCoverImage].SetValue("https://example.com/c.jpg")
	ta.form.content.SetValue("Body text.")

	cmd := ta.press("ctrl+s")
	require.True(t, ta.submitting)
	done, ok := cmd().(submitDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)

	ta.Update(done)
	assert.False(t, ta.submitting)
	assert.Equal(t, viewmodel.DetailPath(done.article.ID), ta.snap.Route.Path)
	assert.Equal(t, viewmodel.DetailReady, ta.snap.Detail.Status)
	assert.Equal(t, []string{"career", "skills"}, ta.snap.Detail.Article.Category)
	assert.Empty(t, ta.form.value(fieldTitle))

	ta.settle(t, func(s viewmodel.Snapshot) bool { return listReady(s) && len(s.List.Articles) == 3 })
	assert.Equal(t, 2, ta.cursor)
}

func TestComposeFieldNavigation(t *testing.T) {
	ta := newTestApp(t, "/new")
	ta.Init()

	ta.press("tab")
	assert.Equal(t, fieldCategories, ta.form.focus)
	ta.press("enter")
	assert.Equal(t, fieldDescription, ta.form.focus)
	_, _ = ta.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldCategories, ta.form.focus)

	ta.form.focusField(fieldTitle)
	_, _ = ta.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldAuthorAvatar, ta.form.focus)
}

func TestHelpToggle(t *testing.T) {
	ta := newTestApp(t, "/")
	ta.press("?")
	assert.Contains(t, ta.View(), "Keyboard Shortcuts")
	ta.press("q")
	assert.False(t, ta.help)
	assert.True(t, strings.Contains(ta.View(), "blogdesk"))
}

func TestComposeErrorMessages(t *testing.T) {
	assert.Equal(t, "Could not create blog. Request failed (500)", composeError(errors.New("Request failed (500)")))
	assert.Equal(t, "Please fill in: title", composeError(&blogs.ValidationError{Fields: []string{"title"}}))
}
