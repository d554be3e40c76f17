package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/SatinderSinghSall/poetry-cli/internal/client/client"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/listview"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/models"
)

// poemView builds a list view over the poems collection. Delete is wired only
// for the admin management view; the public browse view has no remove hook.
func (a *App) poemView(canDelete bool) *listview.View[models.Poem] {
	cfg := listview.Config[models.Poem]{
		Fetch:    a.poems.List,
		ID:       func(p models.Poem) string { return p.ID },
		PageSize: a.config.PageSize,
		SearchFields: func(p models.Poem) []string {
			return []string{p.Title, p.Author}
		},
	}
	if canDelete {
		cfg.Remove = a.poems.Delete
	}
	return listview.New(cfg)
}

func renderPoemLine(p models.Poem) string {
	marker := " "
	if p.Featured {
		marker = "*"
	}
	return fmt.Sprintf("%s %-24s  %-18s  %4d views  %2d min  [%s]  %s",
		marker, p.Title, p.Author, p.Views, p.ReadingTime, p.Status, p.ID)
}

// runPoemList runs a poem list session with the poem-specific filter and
// sort commands layered on top of the generic list commands.
func (a *App) runPoemList(ctx context.Context, view *listview.View[models.Poem], empty string) error {
	l := &listSession[models.Poem]{
		view:   view,
		reader: a.reader,
		render: renderPoemLine,
		empty:  empty,
	}
	l.extra = func(ctx context.Context, cmd string, args []string) bool {
		switch cmd {
		case "theme":
			if len(args) == 0 {
				view.ClearPredicate("theme")
				return true
			}
			want := strings.Join(args, " ")
			view.SetPredicate("theme", func(p models.Poem) bool {
				return strings.EqualFold(p.Theme, want)
			})
			return true

		case "featured":
			view.SetPredicate("featured", func(p models.Poem) bool { return p.Featured })
			return true

		case "all":
			view.ClearFilters()
			return true

		case "sort":
			if len(args) == 0 {
				printlnFn("Usage: sort newest|views|time")
				return true
			}
			switch args[0] {
			case "newest":
				view.SortBy(models.PoemNewerFirst)
			case "views":
				view.SortBy(models.PoemMostViewedFirst)
			case "time":
				view.SortBy(models.PoemQuickestReadFirst)
			default:
				printlnFn("Usage: sort newest|views|time")
			}
			return true

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <id>")
				return true
			}
			_ = a.ShowPoem(ctx, args[0])
			return true
		}
		return false
	}
	return l.run(ctx)
}

// BrowsePoems is the public poem list, available without a session.
func (a *App) BrowsePoems(ctx context.Context) error {
	return a.runPoemList(ctx, a.poemView(false), "No poems yet. The admin will add them soon.")
}

// ShowPoem prints one poem in full.
func (a *App) ShowPoem(ctx context.Context, id string) error {
	p, err := a.poems.Get(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			printlnFn("No poem with that id.")
			return nil
		}
		log.Printf("error loading poem: %v", err)
		return err
	}

	printlnFn(p.Title)
	printlnFn("by " + p.Author)
	printlnFn("")
	printlnFn(p.Content)
	printlnFn("")
	if p.Theme != "" {
		printlnFn("Theme: " + p.Theme)
	}
	if len(p.Tags) > 0 {
		printlnFn("Tags: " + strings.Join(p.Tags, ", "))
	}
	printlnFn(fmt.Sprintf("%d views, %d likes, %d min read", p.Views, p.Likes, p.ReadingTime))
	printlnFn("Published " + p.CreatedAt.Format("2006-01-02"))
	return nil
}
