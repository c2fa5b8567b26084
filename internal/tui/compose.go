package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/matheuskafuri/blogdesk/internal/blogs"
	"github.com/matheuskafuri/blogdesk/internal/viewmodel"
)

const msgCreateFailed = "Could not create blog."

type composeField int

const (
	fieldTitle composeField = iota
	fieldCategories
	fieldDescription
	fieldCoverImage
	fieldContent
	fieldAuthorName
	fieldAuthorRole
	fieldAuthorAvatar
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldTitle:        "Title *",
	fieldCategories:   "Categories",
	fieldDescription:  "Description *",
	fieldCoverImage:   "Cover image URL *",
	fieldContent:      "Content *",
	fieldAuthorName:   "Author name",
	fieldAuthorRole:   "Author role (optional)",
	fieldAuthorAvatar: "Author avatar URL (optional)",
}

// composeForm is the controlled form behind the compose pane. Content is a
// textarea; every other field is a single-line input.
type composeForm struct {
	inputs  [fieldCount]textinput.Model
	content textarea.Model
	focus   composeField
}

func newComposeForm() composeForm {
	var f composeForm
	placeholders := [fieldCount]string{
		fieldTitle:        "Enter blog title",
		fieldCategories:   "TECH, FINANCE",
		fieldDescription:  "A short summary",
		fieldCoverImage:   "https://...",
		fieldAuthorName:   "Jane Doe",
		fieldAuthorRole:   "Senior Writer",
		fieldAuthorAvatar: "https://...",
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 300
		f.inputs[i] = ti
	}

	ta := textarea.New()
	ta.Placeholder = "Write your story. Separate paragraphs with a blank line."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(6)
	f.content = ta
	return f
}

func (f *composeForm) setWidth(w int) {
	w = max(10, w)
	for i := range f.inputs {
		f.inputs[i].Width = w
	}
	f.content.SetWidth(w)
}

func (f *composeForm) focusField(field composeField) tea.Cmd {
	f.blurAll()
	f.focus = (field + fieldCount) % fieldCount
	if f.focus == fieldContent {
		return f.content.Focus()
	}
	return f.inputs[f.focus].Focus()
}

func (f *composeForm) blurAll() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.content.Blur()
}

func (f *composeForm) next() tea.Cmd { return f.focusField(f.focus + 1) }
func (f *composeForm) prev() tea.Cmd { return f.focusField(f.focus - 1) }

func (f *composeForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == fieldContent {
		f.content, cmd = f.content.Update(msg)
		return cmd
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *composeForm) value(field composeField) string {
	if field == fieldContent {
		return f.content.Value()
	}
	return f.inputs[field].Value()
}

func (f *composeForm) form() blogs.ComposeForm {
	return blogs.ComposeForm{
		Title:        f.value(fieldTitle),
		Categories:   f.value(fieldCategories),
		Description:  f.value(fieldDescription),
		CoverImage:   f.value(fieldCoverImage),
		Content:      f.value(fieldContent),
		AuthorName:   f.value(fieldAuthorName),
		AuthorRole:   f.value(fieldAuthorRole),
		AuthorAvatar: f.value(fieldAuthorAvatar),
	}
}

func (f *composeForm) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.content.Reset()
	f.blurAll()
	f.focus = fieldTitle
}

// view renders the form and reports the line the focused field starts on.
func (f *composeForm) view(pane viewmodel.ComposePane, width int, spin string) (string, int) {
	lines := []string{detailTitleStyle.Render("Write a new blog"), ""}
	focusLine := 0
	for i := composeField(0); i < fieldCount; i++ {
		if i == fieldAuthorName {
			lines = append(lines, helpDimStyle.Render("Author (optional)"))
		}
		label := formLabelStyle
		if i == f.focus {
			label = formLabelFocusStyle
			focusLine = len(lines)
		}
		lines = append(lines, label.Render(fieldLabels[i]))
		if i == fieldContent {
			lines = append(lines, strings.Split(f.content.View(), "\n")...)
		} else {
			lines = append(lines, f.inputs[i].View())
		}
		if i == fieldCategories {
			lines = append(lines, hintStyle.Render("Separate multiple categories with commas."))
		}
		lines = append(lines, "")
	}

	if pane.Pending {
		lines = append(lines, submitDisabledStyle.Render(spin+" Publishing..."))
	} else {
		lines = append(lines, submitStyle.Render("Publish")+helpDimStyle.Render("  ctrl+s"))
	}
	if pane.Err != nil {
		lines = append(lines, "", errorBannerStyle.Render(wrapText(composeError(pane.Err), width)))
	}
	return strings.Join(lines, "\n"), focusLine
}

func composeError(err error) string {
	var verr *blogs.ValidationError
	if errors.As(err, &verr) {
		return "Please fill in: " + strings.Join(verr.Fields, ", ")
	}
	return msgCreateFailed + " " + err.Error()
}
