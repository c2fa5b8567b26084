// Package tui is the terminal shell: a list pane on the left and, on the
// right, the open article, a placeholder, or the compose form.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matheuskafuri/blogdesk/internal/blogs"
	"github.com/matheuskafuri/blogdesk/internal/browser"
	"github.com/matheuskafuri/blogdesk/internal/viewmodel"
)

type focusPane int

const (
	focusList focusPane = iota
	focusDetail
)

type mode int

const (
	modeBrowse mode = iota
	modeCompose
	modeHelp
)

const flashDuration = 3 * time.Second

type App struct {
	vm   *viewmodel.Model
	snap viewmodel.Snapshot

	cursor       int
	selectActive bool
	focus        focusPane
	help         bool
	detailScroll int

	width  int
	height int

	// Sub-components
	form    composeForm
	spinner spinner.Model
	ticking bool

	// State
	submitting bool
	flash      string
	flashSeq   int
	err        error

	skeletonRows int
	listWidth    float64
	open         func(url string) error
	now          func() time.Time
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Model        *viewmodel.Model
	SkeletonRows int
	ListWidth    float64
	// Open hands a URL to the system browser; browser.Open when nil.
	Open         func(url string) error
	Now          func() time.Time
}

func NewApp(opts RunOpts) *App {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	a := &App{
		vm:           opts.Model,
		form:         newComposeForm(),
		spinner:      sp,
		skeletonRows: opts.SkeletonRows,
		listWidth:    opts.ListWidth,
		open:         opts.Open,
		now:          opts.Now,
	}
	if a.skeletonRows <= 0 {
		a.skeletonRows = 4
	}
	if a.listWidth <= 0 || a.listWidth >= 1 {
		a.listWidth = 0.35
	}
	if a.open == nil {
		a.open = browser.Open
	}
	if a.now == nil {
		a.now = time.Now
	}
	a.applySnapshot()
	if a.snap.Route.Mode == viewmodel.ModeDetail {
		a.focus = focusDetail
	}
	return a
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForChange(a.vm), a.startTick()}
	if a.currentMode() == modeCompose {
		cmds = append(cmds, a.form.focusField(fieldTitle))
	}
	return tea.Batch(cmds...)
}

// waitForChange blocks on the view model and re-arms after every delivery.
func waitForChange(vm *viewmodel.Model) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-vm.Changes():
			return stateChangedMsg{}
		case <-vm.Done():
			return nil
		}
	}
}

func submitCmd(vm *viewmodel.Model, form blogs.ComposeForm) tea.Cmd {
	return func() tea.Msg {
		created, err := vm.Submit(context.Background(), form)
		return submitDoneMsg{article: created, err: err}
	}
}

func openBrowserCmd(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		if err := open(url); err != nil {
			return openErrMsg{err: err}
		}
		return flashMsg{text: "Opened cover image"}
	}
}

func showFlash(text string) tea.Cmd {
	return func() tea.Msg { return flashMsg{text: text} }
}

func (a *App) currentMode() mode {
	switch {
	case a.help:
		return modeHelp
	case a.snap.Route.Mode == viewmodel.ModeCompose:
		return modeCompose
	default:
		return modeBrowse
	}
}

func (a *App) busy() bool {
	return a.snap.List.Status == viewmodel.ListLoading ||
		a.snap.List.Refreshing ||
		a.snap.Detail.Status == viewmodel.DetailLoading ||
		a.snap.Compose.Pending
}

func (a *App) startTick() tea.Cmd {
	if a.ticking || !a.busy() {
		return nil
	}
	a.ticking = true
	return a.spinner.Tick
}

// applySnapshot pulls the latest view model state and keeps the cursor on
// the open article when the route changes under it.
func (a *App) applySnapshot() {
	prev := a.snap
	a.snap = a.vm.Snapshot()

	list := a.snap.List.Articles
	if a.cursor >= len(list) {
		a.cursor = max(0, len(list)-1)
	}

	active := a.snap.Route.ActiveID
	if active != prev.Route.ActiveID {
		a.detailScroll = 0
		a.selectActive = active != ""
	}
	// The active article may only show up in the list after a refetch.
	if a.selectActive {
		for i, art := range list {
			if art.ID == active {
				a.cursor = i
				a.selectActive = false
				break
			}
		}
	}
}

func (a *App) navigate(path string) tea.Cmd {
	a.vm.Navigate(path)
	a.applySnapshot()
	return a.startTick()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		_, detailWidth := a.paneWidths()
		a.form.setWidth(detailWidth - 4)
		a.detailScroll = min(a.detailScroll, a.maxDetailScroll())
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case stateChangedMsg:
		a.applySnapshot()
		return a, tea.Batch(waitForChange(a.vm), a.startTick())

	case submitDoneMsg:
		a.submitting = false
		if msg.err != nil {
			a.applySnapshot()
			return a, nil
		}
		a.form.reset()
		a.focus = focusDetail
		a.applySnapshot()
		return a, showFlash("Published " + msg.article.Title)

	case flashMsg:
		a.flash = msg.text
		a.flashSeq++
		seq := a.flashSeq
		return a, tea.Tick(flashDuration, func(time.Time) tea.Msg {
			return clearFlashMsg{seq: seq}
		})

	case clearFlashMsg:
		if msg.seq == a.flashSeq {
			a.flash = ""
		}
		return a, nil

	case openErrMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if !a.busy() {
			a.ticking = false
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	// Cursor blink and other input messages belong to the form.
	if a.currentMode() == modeCompose {
		return a, a.form.update(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.currentMode() {
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			a.help = false
		}
		return a, nil
	case modeCompose:
		return a.handleComposeKey(msg)
	}

	list := a.snap.List.Articles
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.focus == focusList && a.cursor < len(list)-1 {
			a.cursor++
		} else if a.focus == focusDetail {
			a.detailScroll = min(a.detailScroll+1, a.maxDetailScroll())
		}
		return a, nil
	case "k", "up":
		if a.focus == focusList && a.cursor > 0 {
			a.cursor--
		} else if a.focus == focusDetail && a.detailScroll > 0 {
			a.detailScroll--
		}
		return a, nil
	case "enter":
		if a.snap.List.Status == viewmodel.ListReady && a.cursor < len(list) {
			a.focus = focusDetail
			return a, a.navigate(viewmodel.DetailPath(list[a.cursor].ID))
		}
		return a, nil
	case "tab":
		if a.focus == focusList && a.snap.Route.Mode == viewmodel.ModeDetail {
			a.focus = focusDetail
		} else {
			a.focus = focusList
		}
		return a, nil
	case "esc":
		if a.snap.Route.Mode == viewmodel.ModeDetail {
			a.focus = focusList
			return a, a.navigate(viewmodel.HomePath)
		}
		return a, nil
	case "n":
		cmd := a.navigate(viewmodel.ComposePath)
		return a, tea.Batch(cmd, a.form.focusField(fieldTitle))
	case "r":
		a.vm.Refresh()
		a.applySnapshot()
		return a, a.startTick()
	case "o":
		if a.snap.Detail.Status == viewmodel.DetailReady && a.snap.Detail.Article.CoverImage != "" {
			return a, openBrowserCmd(a.open, a.snap.Detail.Article.CoverImage)
		}
		return a, nil
	case "s":
		if a.snap.Route.Mode == viewmodel.ModeDetail {
			return a, showFlash("Share link: " + a.snap.Route.Path)
		}
		return a, nil
	case "?":
		a.help = true
		return a, nil
	}

	return a, nil
}

func (a *App) handleComposeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.form.blurAll()
		a.focus = focusList
		return a, a.navigate(viewmodel.HomePath)
	case "tab":
		return a, a.form.next()
	case "shift+tab":
		return a, a.form.prev()
	case "enter":
		if a.form.focus != fieldContent {
			return a, a.form.next()
		}
	case "ctrl+s":
		if a.submitting || a.snap.Compose.Pending {
			return a, nil
		}
		a.submitting = true
		return a, submitCmd(a.vm, a.form.form())
	}
	return a, a.form.update(msg)
}

func (a *App) paneWidths() (int, int) {
	listWidth := int(float64(a.width) * a.listWidth)
	return listWidth, a.width - listWidth - 1
}

func (a *App) contentHeight() int {
	// header, status bar and pane borders
	return max(3, a.height-4)
}

// maxDetailScroll is how far the open article can scroll before its last
// line reaches the bottom of the pane.
func (a *App) maxDetailScroll() int {
	if a.snap.Detail.Status != viewmodel.DetailReady {
		return 0
	}
	_, detailWidth := a.paneWidths()
	article := renderArticle(a.snap.Detail.Article, detailWidth-4, a.now())
	return max(0, strings.Count(article, "\n")+1-a.contentHeight())
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  blogdesk")
	}

	if a.help {
		return a.renderHelp()
	}

	contentHeight := a.contentHeight()
	listWidth, detailWidth := a.paneWidths()
	now := a.now()

	// Header
	headerLeft := headerStyle.Render("blogdesk")
	headerRight := headerRouteStyle.Render(a.snap.Route.Path + " · " + now.Format("Jan 2"))
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	// List pane
	innerListW := listWidth - 4 // border + padding
	listContent := renderList(a.snap.List, a.cursor, contentHeight, innerListW, a.skeletonRows, now)
	listStyle := paneStyle
	if a.focus == focusList && a.currentMode() != modeCompose {
		listStyle = paneActiveStyle
	}
	listPane := listStyle.Width(listWidth - 2).Height(contentHeight).Render(scrollTo(listContent, contentHeight, 0))

	// Right pane
	innerDetailW := detailWidth - 4
	var detailContent string
	if a.currentMode() == modeCompose {
		form, focusLine := a.form.view(a.snap.Compose, innerDetailW, a.spinner.View())
		detailContent = scrollTo(form, contentHeight, max(0, focusLine+10-contentHeight))
	} else {
		detailContent = renderDetail(a.snap.Detail, innerDetailW, contentHeight, a.detailScroll, a.spinner.View(), now)
	}
	detailStyle := paneStyle
	if a.focus == focusDetail || a.currentMode() == modeCompose {
		detailStyle = paneActiveStyle
	}
	detailPane := detailStyle.Width(detailWidth - 2).Height(contentHeight).Render(detailContent)

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)

	// Status bar
	left := fmt.Sprintf("%d blogs", len(a.snap.List.Articles))
	if a.snap.List.Refreshing {
		left = a.spinner.View() + " " + left + " (refreshing...)"
	}
	if a.flash != "" {
		left += "  " + flashStyle.Render(a.flash)
	}
	status := renderStatusBar(left, statusHints(a.currentMode(), a.focus), a.width)

	// Error display
	if a.err != nil {
		status = lipgloss.NewStyle().Foreground(colorError).Render(a.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, status)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("blogdesk")
	dim := helpDimStyle

	help := title + dim.Render(" · Keyboard Shortcuts") + "\n\n" +
		dim.Render("Reading") + "\n" +
		"  j/k, ↑/↓     Move in the list, scroll the article\n" +
		"  enter         Open the highlighted blog\n" +
		"  tab           Switch focus between list and article\n" +
		"  esc           Close the article\n\n" +
		dim.Render("Actions") + "\n" +
		"  n             Write a new blog\n" +
		"  r             Refresh\n" +
		"  o             Open the cover image in a browser\n" +
		"  s             Show the share link\n\n" +
		dim.Render("Writing") + "\n" +
		"  tab/shift+tab Next / previous field\n" +
		"  ctrl+s        Publish\n" +
		"  esc           Cancel\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
