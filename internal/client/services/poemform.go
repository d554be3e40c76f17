package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/SatinderSinghSall/poetry-cli/internal/client/client"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/models"
	"github.com/SatinderSinghSall/poetry-cli/internal/client/repositories/state"
	"github.com/go-playground/validator/v10"
)

// draftKey is the fixed state-store key the unsubmitted add form lives under.
const draftKey = "poem_draft"

// FormMode selects the poem form's behavior: add autosaves a draft, edit
// seeds from an existing poem and never touches the draft.
type FormMode string

const (
	FormModeAdd  FormMode = "add"
	FormModeEdit FormMode = "edit"
)

// Field names a poem form field for Set/Value.
type Field string

const (
	FieldTitle      Field = "title"
	FieldAuthor     Field = "author"
	FieldContent    Field = "content"
	FieldSummary    Field = "summary"
	FieldTheme      Field = "theme"
	FieldTags       Field = "tags"
	FieldCoverImage Field = "coverImage"
	FieldStatus     Field = "status"
	FieldFeatured   Field = "featured"
)

var (
	ErrSubmitInFlight = errors.New("a submission is already in flight")
	ErrUnknownField   = errors.New("unknown form field")
)

// PoemForm implements the shared add/edit authoring contract. In add mode
// every Set writes the draft back to the state store, so an abandoned session
// restores verbatim on the next add-form start; a successful submit clears it.
type PoemForm struct {
	mode   FormMode
	poems  PoemService
	drafts state.Repository
	editID string

	d                models.PoemDraft
	sendNotification bool
	submitting       bool
	validate         *validator.Validate
}

// NewAddPoemForm starts an add-mode form, restoring any persisted draft.
// An unreadable draft is discarded rather than failing the form.
func NewAddPoemForm(ctx context.Context, poems PoemService, drafts state.Repository) (*PoemForm, error) {
	f := &PoemForm{
		mode:             FormModeAdd,
		poems:            poems,
		drafts:           drafts,
		d:                models.PoemDraft{Status: models.PoemStatusPublished},
		sendNotification: true,
		validate:         validator.New(),
	}

	b, err := drafts.Get(ctx, draftKey)
	if err != nil {
		return nil, fmt.Errorf("error reading draft: %w", err)
	}
	if b != nil {
		var d models.PoemDraft
		if err := json.Unmarshal(b, &d); err != nil {
			log.Printf("discarding unreadable draft: %v", err)
		} else {
			f.d = d
		}
	}
	return f, nil
}

// NewEditPoemForm starts an edit-mode form seeded from an existing poem.
func NewEditPoemForm(poems PoemService, p *models.Poem) *PoemForm {
	return &PoemForm{
		mode:   FormModeEdit,
		poems:  poems,
		editID: p.ID,
		d: models.PoemDraft{
			Title:      p.Title,
			Author:     p.Author,
			Content:    p.Content,
			Summary:    p.Summary,
			Theme:      p.Theme,
			Tags:       strings.Join(p.Tags, ", "),
			CoverImage: p.CoverImage,
			Status:     p.Status,
			Featured:   p.Featured,
		},
		validate: validator.New(),
	}
}

func (f *PoemForm) Mode() FormMode { return f.mode }

// Set updates one field and, in add mode, autosaves the draft.
func (f *PoemForm) Set(ctx context.Context, field Field, value string) error {
	switch field {
	case FieldTitle:
		f.d.Title = value
	case FieldAuthor:
		f.d.Author = value
	case FieldContent:
		f.d.Content = value
	case FieldSummary:
		f.d.Summary = value
	case FieldTheme:
		f.d.Theme = value
	case FieldTags:
		f.d.Tags = value
	case FieldCoverImage:
		f.d.CoverImage = value
	case FieldStatus:
		if value == models.PoemStatusDraft {
			f.d.Status = models.PoemStatusDraft
		} else {
			f.d.Status = models.PoemStatusPublished
		}
	case FieldFeatured:
		f.d.Featured = parseYes(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return f.autosave(ctx)
}

// Value returns the current value of a field, featured as "y"/"n".
func (f *PoemForm) Value(field Field) string {
	switch field {
	case FieldTitle:
		return f.d.Title
	case FieldAuthor:
		return f.d.Author
	case FieldContent:
		return f.d.Content
	case FieldSummary:
		return f.d.Summary
	case FieldTheme:
		return f.d.Theme
	case FieldTags:
		return f.d.Tags
	case FieldCoverImage:
		return f.d.CoverImage
	case FieldStatus:
		return f.d.Status
	case FieldFeatured:
		if f.d.Featured {
			return "y"
		}
		return "n"
	default:
		return ""
	}
}

// SetSendNotification toggles the notify-subscribers flag (add mode only;
// it is not part of the draft).
func (f *PoemForm) SetSendNotification(v bool) { f.sendNotification = v }

func (f *PoemForm) SendNotification() bool { return f.sendNotification }

type poemSubmission struct {
	Title   string `validate:"required"`
	Author  string `validate:"required"`
	Content string `validate:"required"`
}

// Validate blocks submission unless title, author and content are non-empty.
func (f *PoemForm) Validate() error {
	in := poemSubmission{Title: f.d.Title, Author: f.d.Author, Content: f.d.Content}
	if err := f.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: title, author and content are required", client.ErrValidation)
	}
	return nil
}

// Submit validates and sends the poem. On a successful add the draft is
// cleared and the form reset; on failure both form and draft are untouched.
// A submit while another is in flight returns ErrSubmitInFlight.
func (f *PoemForm) Submit(ctx context.Context) (*models.Poem, error) {
	if f.submitting {
		return nil, ErrSubmitInFlight
	}
	f.submitting = true
	defer func() { f.submitting = false }()

	if err := f.Validate(); err != nil {
		return nil, err
	}

	in := models.PoemInput{
		Title:      f.d.Title,
		Author:     f.d.Author,
		Content:    f.d.Content,
		Summary:    f.d.Summary,
		Theme:      f.d.Theme,
		Tags:       models.NormalizeTags(f.d.Tags),
		CoverImage: f.d.CoverImage,
		Status:     f.d.Status,
		Featured:   f.d.Featured,
	}

	if f.mode == FormModeEdit {
		return f.poems.Update(ctx, f.editID, in)
	}

	in.SendNotification = f.sendNotification
	p, err := f.poems.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	if err := f.drafts.Delete(ctx, draftKey); err != nil {
		log.Printf("error clearing draft: %v", err)
	}
	f.d = models.PoemDraft{Status: models.PoemStatusPublished}
	f.sendNotification = true
	return p, nil
}

// Preview renders the current form state as read-only formatted text with no
// backend round trip.
func (f *PoemForm) Preview() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", f.d.Title)
	fmt.Fprintf(&b, "by %s\n\n", f.d.Author)
	fmt.Fprintf(&b, "%s\n", f.d.Content)
	if f.d.Summary != "" {
		fmt.Fprintf(&b, "\nSummary: %s\n", f.d.Summary)
	}
	if f.d.Theme != "" {
		fmt.Fprintf(&b, "Theme: %s\n", f.d.Theme)
	}
	if tags := models.NormalizeTags(f.d.Tags); len(tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(tags, ", "))
	}
	fmt.Fprintf(&b, "Status: %s", f.d.Status)
	if f.d.Featured {
		b.WriteString(" (featured)")
	}
	fmt.Fprintf(&b, "\nWords: %d\n", f.WordCount())
	return b.String()
}

// WordCount counts whitespace-separated words in the content field.
func (f *PoemForm) WordCount() int {
	return len(strings.Fields(f.d.Content))
}

func (f *PoemForm) autosave(ctx context.Context) error {
	if f.mode != FormModeAdd {
		return nil
	}
	b, err := json.Marshal(f.d)
	if err != nil {
		return err
	}
	return f.drafts.Set(ctx, draftKey, b)
}

func parseYes(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "yes", "true", "1":
		return true
	default:
		return false
	}
}
