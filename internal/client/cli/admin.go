package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/SatinderSinghSall/poetry-cli/internal/client/client"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/listview"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/models"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/services"
)

// Dashboard prints the admin overview: collection counts and the most
// recently added poems.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.guard(ctx, AdminGate) {
		return nil
	}

	stats, err := a.dashboard.Stats(ctx)
	if err != nil {
		log.Printf("error loading dashboard: %v", err)
		return err
	}
	printlnFn(fmt.Sprintf("Poems: %d  Users: %d  Subscribers: %d",
		stats.Poems, stats.Users, stats.Subscribers))
	if len(stats.Recent) > 0 {
		printlnFn("Recently added:")
		for _, p := range stats.Recent {
			printlnFn("  " + p.Title + " by " + p.Author)
		}
	}
	return nil
}

// ManagePoems is the admin poem list with delete enabled.
func (a *App) ManagePoems(ctx context.Context) error {
	if !a.guard(ctx, AdminGate) {
		return nil
	}
	return a.runPoemList(ctx, a.poemView(true), "No poems yet. Use 'addpoem' to create one.")
}

// ManageUsers is the admin user list.
func (a *App) ManageUsers(ctx context.Context) error {
	if !a.guard(ctx, AdminGate) {
		return nil
	}

	view := listview.New(listview.Config[models.User]{
		Fetch:    a.users.List,
		Remove:   a.users.Delete,
		ID:       func(u models.User) string { return u.ID },
		PageSize: a.config.PageSize,
		SearchFields: func(u models.User) []string {
			return []string{u.Name, u.Email}
		},
	})
	l := &listSession[models.User]{
		view:   view,
		reader: a.reader,
		empty:  "No registered users.",
		render: func(u models.User) string {
			return fmt.Sprintf("%-20s  %-30s  %-6s  %s", u.Name, u.Email, u.Role, u.ID)
		},
	}
	return l.run(ctx)
}

// ManageSubscribers is the admin newsletter subscriber list. Deleting an
// entry unsubscribes that address.
func (a *App) ManageSubscribers(ctx context.Context) error {
	if !a.guard(ctx, AdminGate) {
		return nil
	}

	view := listview.New(listview.Config[models.Subscriber]{
		Fetch:    a.subscribers.List,
		Remove:   a.subscribers.Unsubscribe,
		ID:       func(s models.Subscriber) string { return s.ID },
		PageSize: a.config.PageSize,
		SearchFields: func(s models.Subscriber) []string {
			return []string{s.Email}
		},
	})
	l := &listSession[models.Subscriber]{
		view:   view,
		reader: a.reader,
		empty:  "No subscribers yet.",
		render: func(s models.Subscriber) string {
			return fmt.Sprintf("%-30s  since %s  %s", s.Email, s.SubscribedAt.Format("2006-01-02"), s.ID)
		},
	}
	return l.run(ctx)
}

// AddPoem starts the add-poem form, restoring any saved draft.
func (a *App) AddPoem(ctx context.Context) error {
	if !a.guard(ctx, AdminGate) {
		return nil
	}

	form, err := services.NewAddPoemForm(ctx, a.poems, a.repos.State)
	if err != nil {
		log.Printf("error starting poem form: %v", err)
		return err
	}
	if form.Value(services.FieldTitle) != "" || form.Value(services.FieldContent) != "" {
		printlnFn("Restored a saved draft.")
	}
	return a.runPoemForm(ctx, form)
}

// EditPoem loads a poem and starts the edit form for it.
func (a *App) EditPoem(ctx context.Context, id string) error {
	if !a.guard(ctx, AdminGate) {
		return nil
	}

	p, err := a.poems.Get(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			printlnFn("No poem with that id.")
			return nil
		}
		log.Printf("error loading poem: %v", err)
		return err
	}
	return a.runPoemForm(ctx, services.NewEditPoemForm(a.poems, p))
}

// poemFormFields lists the prompts in the order the form walks them.
var poemFormFields = []struct {
	field     services.Field
	prompt    string
	multiline bool
}{
	{services.FieldTitle, "Title", false},
	{services.FieldAuthor, "Author", false},
	{services.FieldContent, "Content", true},
	{services.FieldSummary, "Summary", false},
	{services.FieldTheme, "Theme", false},
	{services.FieldTags, "Tags (comma separated)", false},
	{services.FieldCoverImage, "Cover image URL", false},
	{services.FieldStatus, "Status (published/draft)", false},
	{services.FieldFeatured, "Featured (y/n)", false},
}

// runPoemForm walks the user through every form field, shows a preview and
// submits on confirmation. Empty input keeps the current value, so editing a
// single field of an existing poem is one keystroke per untouched prompt.
func (a *App) runPoemForm(ctx context.Context, form *services.PoemForm) error {
	for _, f := range poemFormFields {
		current := form.Value(f.field)
		prompt := f.prompt
		if current != "" {
			prompt = fmt.Sprintf("%s [%s]", f.prompt, current)
		}
		prompt += ": "

		var (
			in  string
			err error
		)
		if f.multiline {
			in, err = GetMultiline(a.reader, prompt, os.Stdout)
		} else {
			in, err = GetSimpleText(a.reader, prompt, os.Stdout)
		}
		if err != nil {
			return err
		}
		if in == "" {
			continue
		}
		if err := form.Set(ctx, f.field, in); err != nil {
			log.Printf("error setting %s: %v", f.field, err)
		}
	}

	if form.Mode() == services.FormModeAdd {
		in, err := GetSimpleText(a.reader, "Email subscribers? (y/n) [y]: ", os.Stdout)
		if err != nil {
			return err
		}
		form.SetSendNotification(yes(in, true))
	}

	printlnFn("")
	printlnFn(form.Preview())

	in, err := GetSimpleText(a.reader, "Submit now? (y/n): ", os.Stdout)
	if err != nil {
		return err
	}
	if !yes(in, false) {
		if form.Mode() == services.FormModeAdd {
			printlnFn("Draft saved. Run 'addpoem' again to continue.")
		} else {
			printlnFn("Changes discarded.")
		}
		return nil
	}

	p, err := form.Submit(ctx)
	if err != nil {
		log.Printf("Submit failed: %v", err)
		return err
	}
	printlnFn(fmt.Sprintf("Saved %q (%s).", p.Title, p.ID))
	return nil
}
