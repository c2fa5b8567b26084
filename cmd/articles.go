package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/matheuskafuri/blogdesk/internal/blogs"
	"github.com/matheuskafuri/blogdesk/internal/content"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all blogs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		sub := blogs.SubscribeList(s.cache, s.svc)
		defer sub.Close()
		st, err := awaitSettled(cmd.Context(), sub)
		if err != nil {
			return fmt.Errorf("loading blogs: %w", err)
		}

		list := blogs.Articles(st)
		if len(list) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No blogs yet. Create one with `blogdesk post`.")
			return nil
		}
		printArticleTable(cmd.OutOrStdout(), list, time.Now())
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one blog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		sub := blogs.SubscribeDetail(s.cache, s.svc, args[0])
		defer sub.Close()
		st, err := awaitSettled(cmd.Context(), sub)
		if err != nil {
			return fmt.Errorf("loading blog %s: %w", args[0], err)
		}

		a, _ := blogs.ArticleOf(st)
		printArticle(cmd.OutOrStdout(), a, time.Now())
		return nil
	},
}

var (
	flagTitle        string
	flagCategories   string
	flagDescription  string
	flagCover        string
	flagContent      string
	flagContentFile  string
	flagAuthorName   string
	flagAuthorRole   string
	flagAuthorAvatar string
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Publish a new blog",
	Long: `Publish a new blog. Title, description, cover image and content are required.

Content can be given inline with --content or read from a file with --content-file
("-" reads standard input). Separate paragraphs with a blank line.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		body := flagContent
		if flagContentFile != "" {
			data, err := readContent(cmd.InOrStdin(), flagContentFile)
			if err != nil {
				return err
			}
			body = data
		}

		input, err := blogs.ComposeForm{
			Title:        flagTitle,
			Categories:   flagCategories,
			Description:  flagDescription,
			CoverImage:   flagCover,
			Content:      body,
			AuthorName:   flagAuthorName,
			AuthorRole:   flagAuthorRole,
			AuthorAvatar: flagAuthorAvatar,
		}.Input()
		if err != nil {
			return err
		}

		s, err := openSession(cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		created, err := blogs.Create(cmd.Context(), blogs.NewCreateMutation(s.cache), s.svc, input)
		if err != nil {
			return fmt.Errorf("creating blog: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n%s\n", created.ID, created.Path())
		return nil
	},
}

func init() {
	f := postCmd.Flags()
	f.StringVar(&flagTitle, "title", "", "blog title (required)")
	f.StringVar(&flagCategories, "categories", "", "comma-separated categories, e.g. TECH,FINANCE")
	f.StringVar(&flagDescription, "description", "", "short summary (required)")
	f.StringVar(&flagCover, "cover", "", "cover image URL (required)")
	f.StringVar(&flagContent, "content", "", "article body")
	f.StringVar(&flagContentFile, "content-file", "", "read the article body from a file, - for stdin")
	f.StringVar(&flagAuthorName, "author-name", "", "author name")
	f.StringVar(&flagAuthorRole, "author-role", "", "author role")
	f.StringVar(&flagAuthorAvatar, "author-avatar", "", "author avatar URL")
}

func readContent(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading content: %w", err)
	}
	return string(data), nil
}

const titleColumnWidth = 48

func printArticleTable(w io.Writer, list []blogs.Article, now time.Time) {
	idWidth, catWidth, whenWidth := len("ID"), len("CATEGORY"), len("PUBLISHED")
	rows := make([][3]string, len(list))
	for i, a := range list {
		when, err := content.FormatRelative(a.Date, now)
		if err != nil {
			when = "-"
		}
		rows[i] = [3]string{a.ID, a.PrimaryCategory(), when}
		idWidth = max(idWidth, runewidth.StringWidth(a.ID))
		catWidth = max(catWidth, runewidth.StringWidth(rows[i][1]))
		whenWidth = max(whenWidth, runewidth.StringWidth(when))
	}

	line := func(id, cat, when, title string) {
		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			runewidth.FillRight(id, idWidth),
			runewidth.FillRight(cat, catWidth),
			runewidth.FillRight(when, whenWidth),
			runewidth.Truncate(title, titleColumnWidth, "..."),
		)
	}
	line("ID", "CATEGORY", "PUBLISHED", "TITLE")
	for i, a := range list {
		line(rows[i][0], rows[i][1], rows[i][2], a.Title)
	}
}

func printArticle(w io.Writer, a blogs.Article, now time.Time) {
	fmt.Fprintln(w, a.Title)
	fmt.Fprintln(w, strings.Repeat("=", min(runewidth.StringWidth(a.Title), 72)))

	primary := a.PrimaryCategory()
	tags := []string{content.CategoryIcon(primary) + " " + strings.ToUpper(primary)}
	if len(a.Category) > 1 {
		for _, c := range a.Category[1:] {
			tags = append(tags, strings.ToUpper(c))
		}
	}
	fmt.Fprintf(w, "%s · %d min read\n", strings.Join(tags, " · "), a.ReadTime())

	if t, err := content.ParseTimestamp(a.Date); err == nil {
		fmt.Fprintf(w, "Published %s · %s\n", t.UTC().Format(content.DateLayout), content.RelativeTime(t, now))
	}
	if a.CoverImage != "" {
		fmt.Fprintf(w, "Cover: %s\n", a.CoverImage)
	}
	if a.Description != "" {
		fmt.Fprintf(w, "\n%s\n", a.Description)
	}

	for _, p := range a.Paragraphs() {
		fmt.Fprintln(w)
		switch p.Kind {
		case content.Heading:
			fmt.Fprintf(w, "## %s\n", p.Text)
		case content.Quote:
			for _, l := range strings.Split(p.Text, "\n") {
				fmt.Fprintf(w, "> %s\n", l)
			}
		default:
			fmt.Fprintln(w, p.Text)
		}
	}

	if a.Author != nil && a.Author.Name != "" {
		fmt.Fprintf(w, "\n[%s] %s", content.Initials(a.Author.Name), a.Author.Name)
		if a.Author.Role != "" {
			fmt.Fprintf(w, ", %s", a.Author.Role)
		}
		fmt.Fprintln(w)
	}
}
