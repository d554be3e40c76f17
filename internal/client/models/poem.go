package models

import (
	"strings"
	"time"
)

// Publication states of a poem.
const (
	PoemStatusDraft     = "draft"
	PoemStatusPublished = "published"
)

// Poem is a backend-owned resource. The client holds a read-through copy per
// list view and never mutates it locally except for removal after a confirmed
// delete.
type Poem struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Content     string    `json:"content"`
	Summary     string    `json:"summary,omitempty"`
	Theme       string    `json:"theme,omitempty"`
	Tags        []string  `json:"tags"`
	CoverImage  string    `json:"coverImage,omitempty"`
	Status      string    `json:"status"`
	Featured    bool      `json:"featured"`
	Views       int       `json:"views"`
	Likes       int       `json:"likes"`
	ReadingTime int       `json:"readingTime"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	AddedBy     string    `json:"addedBy,omitempty"`
}

// PoemInput is the payload for poem create and update calls. Tags are already
// normalized; SendNotification asks the backend to email subscribers and is
// only meaningful on create.
type PoemInput struct {
	Title            string   `json:"title"`
	Author           string   `json:"author"`
	Content          string   `json:"content"`
	Summary          string   `json:"summary,omitempty"`
	Theme            string   `json:"theme,omitempty"`
	Tags             []string `json:"tags"`
	CoverImage       string   `json:"coverImage,omitempty"`
	Status           string   `json:"status"`
	Featured         bool     `json:"featured"`
	SendNotification bool     `json:"sendNotification,omitempty"`
}

// PoemDraft mirrors the add-poem form fields one to one. Tags stay in their
// raw comma-separated form until submission.
type PoemDraft struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	Content    string `json:"content"`
	Summary    string `json:"summary"`
	Theme      string `json:"theme"`
	Tags       string `json:"tags"`
	CoverImage string `json:"coverImage"`
	Status     string `json:"status"`
	Featured   bool   `json:"featured"`
}

// NormalizeTags splits a comma-separated tag string into a trimmed list,
// dropping empty entries.
func NormalizeTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// PoemNewerFirst orders poems by creation time, newest first.
func PoemNewerFirst(a, b Poem) bool {
	return a.CreatedAt.After(b.CreatedAt)
}

// PoemMostViewedFirst orders poems by view count, descending.
func PoemMostViewedFirst(a, b Poem) bool {
	return a.Views > b.Views
}

// PoemQuickestReadFirst orders poems by reading time, ascending.
func PoemQuickestReadFirst(a, b Poem) bool {
	return a.ReadingTime < b.ReadingTime
}
