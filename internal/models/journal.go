// Package models defines the data models persisted by Origami.
package models

import (
	"time"

	"github.com/origami-app/origami/internal/common"
)

// EncryptedPreview is shown in place of content for protected entries.
const EncryptedPreview = "[Encrypted Entry]"

// JournalEntry is one diary record tied to a single calendar date.
// CreatedAt doubles as the entry date: the application keeps at most one
// entry per day by looking up the date range before inserting, not via a
// database constraint.
type JournalEntry struct {
	// ID is assigned by the store and immutable afterwards.
	ID int64

	// Title is a decorative label, e.g. "Entry for January 15, 2024".
	Title string

	// Content holds the plaintext body and is authoritative when
	// IsEncrypted is false.
	Content string

	// EncryptedContent holds the sealed body and is authoritative when
	// IsEncrypted is true.
	EncryptedContent []byte

	// IsEncrypted selects which content field is authoritative. Set at
	// creation time.
	IsEncrypted bool

	// MoodRating is an optional 1-5 self-assessment.
	MoodRating *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// JournalEntryPatch describes a partial update. Nil fields are left
// untouched; UpdatedAt is always refreshed by the store.
type JournalEntryPatch struct {
	Title            *string
	Content          *string
	EncryptedContent []byte
	IsEncrypted      *bool
	MoodRating       *int
}

// IsZero reports whether the patch changes nothing.
func (p JournalEntryPatch) IsZero() bool {
	return p.Title == nil && p.Content == nil && p.EncryptedContent == nil &&
		p.IsEncrypted == nil && p.MoodRating == nil
}

// EntryDate returns the calendar date this entry belongs to.
func (e *JournalEntry) EntryDate() time.Time {
	y, m, d := e.CreatedAt.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, e.CreatedAt.Location())
}

// FormattedDate renders the entry date as "January 15, 2024".
func (e *JournalEntry) FormattedDate() string {
	return e.CreatedAt.Format("January 2, 2006")
}

// Preview returns a short listing line for the entry: the literal
// EncryptedPreview marker for protected entries regardless of whether
// decryption would succeed, otherwise the first maxLen runes of the
// plaintext with "..." appended when truncated.
func (e *JournalEntry) Preview(maxLen int) string {
	if e.IsEncrypted && len(e.EncryptedContent) > 0 {
		return EncryptedPreview
	}
	return common.TruncateText(e.Content, maxLen, "...")
}
