package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/origami-app/origami/internal/common"
	"github.com/origami-app/origami/internal/cryptox"
	"github.com/origami-app/origami/internal/models"
	"github.com/origami-app/origami/internal/repositories/journal"
)

// DecryptFailedPlaceholder is shown when a protected entry cannot be
// opened. Browsing must stay usable even when a blob is unreadable.
const DecryptFailedPlaceholder = "[Encrypted content - unable to decrypt]"

// recentEntriesLimit caps the result of an empty search.
const recentEntriesLimit = 10

// JournalService manages the lifecycle of journal entries: one entry
// per calendar date, sealed at rest whenever password protection is
// active.
type JournalService struct {
	repo  journal.Repository
	guard *PasswordGuard
}

// NewJournalService constructs a service over the given repository and
// password guard.
func NewJournalService(repo journal.Repository, guard *PasswordGuard) *JournalService {
	return &JournalService{repo: repo, guard: guard}
}

// Entries returns every entry, newest first.
func (s *JournalService) Entries(ctx context.Context) ([]models.JournalEntry, error) {
	return s.repo.GetAll(ctx)
}

// ContentForDate returns the entry for the given day together with its
// readable content. Protected entries are opened with the embedded
// master key; when that fails the placeholder text is returned instead
// of an error. A nil entry means no entry exists for the day.
func (s *JournalService) ContentForDate(ctx context.Context, day time.Time) (*models.JournalEntry, string, error) {
	entry, err := s.repo.GetByDate(ctx, day)
	if err != nil {
		return nil, "", err
	}
	if entry == nil {
		return nil, "", nil
	}
	return entry, s.readableContent(entry), nil
}

// SaveForDate stores content for the given day: updating the existing
// entry in place when one exists, creating a new one stamped with the
// day otherwise. Content that is empty after trimming is rejected.
// When password protection is active the body is sealed before it is
// written.
func (s *JournalService) SaveForDate(ctx context.Context, day time.Time, content string) (int64, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return 0, fmt.Errorf("%w: entry content cannot be empty", common.ErrValidation)
	}

	protected, err := s.guard.HasPassword(ctx)
	if err != nil {
		return 0, err
	}

	var (
		plaintext string
		sealed    []byte
	)
	if protected {
		if sealed, err = cryptox.EncryptWithMasterKey(content); err != nil {
			return 0, err
		}
	} else {
		plaintext = content
	}

	existing, err := s.repo.GetByDate(ctx, day)
	if err != nil {
		return 0, err
	}

	if existing != nil {
		patch := models.JournalEntryPatch{
			Content:     &plaintext,
			IsEncrypted: &protected,
		}
		if protected {
			patch.EncryptedContent = sealed
		}
		if err := s.repo.Update(ctx, existing.ID, patch); err != nil {
			return 0, err
		}
		return existing.ID, nil
	}

	entry := &models.JournalEntry{
		Title:            "Entry for " + day.Format("January 2, 2006"),
		Content:          plaintext,
		EncryptedContent: sealed,
		IsEncrypted:      protected,
		CreatedAt:        dayStart(day),
	}
	return s.repo.Create(ctx, entry)
}

// SetMood records the 1-5 mood rating on the entry for the given day.
func (s *JournalService) SetMood(ctx context.Context, day time.Time, rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: mood rating must be between 1 and 5", common.ErrValidation)
	}

	entry, err := s.repo.GetByDate(ctx, day)
	if err != nil {
		return err
	}
	if entry == nil {
		return common.ErrNotFound
	}
	return s.repo.Update(ctx, entry.ID, models.JournalEntryPatch{MoodRating: &rating})
}

// Delete removes the entry with the given id.
func (s *JournalService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Search returns the entries matching query. An empty query yields the
// most recent entries, capped; a non-empty query matches the entry date
// (YYYY-MM-DD substring) or the content/title, case-insensitively, with
// no limit.
func (s *JournalService) Search(ctx context.Context, query string) ([]models.JournalEntry, error) {
	query = strings.TrimSpace(query)

	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if query == "" {
		if len(all) > recentEntriesLimit {
			all = all[:recentEntriesLimit]
		}
		return all, nil
	}

	// plaintext and title matches come from the store; sealed bodies are
	// invisible to SQL and are scanned here after opening them
	fromStore, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	matchedIDs := make(map[int64]bool, len(fromStore))
	for _, entry := range fromStore {
		matchedIDs[entry.ID] = true
	}

	lowered := strings.ToLower(query)
	var matches []models.JournalEntry
	for _, entry := range all {
		switch {
		case matchedIDs[entry.ID]:
			matches = append(matches, entry)
		case strings.Contains(entry.CreatedAt.Format("2006-01-02"), query):
			matches = append(matches, entry)
		case entry.IsEncrypted:
			if plaintext, err := cryptox.DecryptWithMasterKey(entry.EncryptedContent); err == nil &&
				strings.Contains(strings.ToLower(plaintext), lowered) {
				matches = append(matches, entry)
			}
		}
	}
	return matches, nil
}

// ReadableContent exposes the display form of an entry's body.
func (s *JournalService) ReadableContent(entry *models.JournalEntry) string {
	return s.readableContent(entry)
}

func (s *JournalService) readableContent(entry *models.JournalEntry) string {
	if !entry.IsEncrypted {
		return entry.Content
	}
	plaintext, err := cryptox.DecryptWithMasterKey(entry.EncryptedContent)
	if err != nil {
		return DecryptFailedPlaceholder
	}
	return plaintext
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
