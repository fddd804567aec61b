// Package models contains the server-side record types.
package models

// Note is a single note record owned by a user. UserID partitions notes per
// user; NoteID is generated server-side at creation and never changes.
//
// ImageURL holds the presigned link minted when the note was created with an
// image; it is not refreshed afterwards, so it goes stale once the link
// expires. ImageKey keeps the underlying object key so a fresh link could be
// minted later without touching stored notes; it is not part of the API
// payload.
type Note struct {
	UserID    string  `json:"userId"`
	NoteID    string  `json:"noteId"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	ImageURL  *string `json:"imageUrl"`
	ImageKey  *string `json:"-"`
	CreatedAt string  `json:"createdAt"`
}
