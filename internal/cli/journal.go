package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/origami-app/origami/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Journal is the entry point of the journal flow. Without a configured
// password it goes straight to the dashboard; otherwise the user must
// authenticate first.
func (a *App) Journal(ctx context.Context) error {
	has, err := a.guard.HasPassword(ctx)
	if err != nil {
		Error("journal unavailable: %v", err)
		return err
	}

	if has && !a.unlockJournal(ctx) {
		return nil
	}

	a.journalDashboard(ctx)
	return nil
}

// unlockJournal runs the password prompt loop. It returns true once the
// password verifies, and false when the journal is locked out or input
// ends.
func (a *App) unlockJournal(ctx context.Context) bool {
	for {
		if locked, err := a.guard.IsLocked(ctx); err != nil {
			Error("journal unavailable: %v", err)
			return false
		} else if locked {
			remaining, _ := a.guard.LockoutRemaining(ctx)
			Warning("Too many failed attempts. Try again in %d seconds.", remaining)
			return false
		}

		password, err := getPassword("Journal password", os.Stdout)
		if err != nil {
			return false
		}

		ok, err := a.guard.VerifyPassword(ctx, password)
		if err != nil {
			Error("verification failed: %v", err)
			return false
		}
		if ok {
			return true
		}

		if locked, _ := a.guard.IsLocked(ctx); locked {
			remaining, _ := a.guard.LockoutRemaining(ctx)
			Warning("Too many failed attempts. Try again in %d seconds.", remaining)
			return false
		}
		Warning("Incorrect password. %d attempts remaining.", a.guard.RemainingAttempts())
	}
}

// journalDashboard is the per-session editing loop: one entry per
// calendar date, selected by date.
func (a *App) journalDashboard(ctx context.Context) {
	printlnFn("Journal unlocked. Commands: open, write, mood, search, list, delentry, password, back")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		printlnFn("journal> ")
		if !scanner.Scan() {
			return
		}
		switch cmd := strings.TrimSpace(scanner.Text()); cmd {
		case "":
		case "open":
			a.openEntry(ctx)
		case "write":
			a.writeEntry(ctx)
		case "mood":
			a.rateMood(ctx)
		case "search":
			a.searchEntries(ctx)
		case "list":
			a.listEntries(ctx)
		case "delentry":
			a.deleteEntry(ctx)
		case "password":
			a.managePassword(ctx)
		case "back", "exit":
			return
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) openEntry(ctx context.Context) {
	day, err := a.promptDay()
	if err != nil {
		return
	}

	entry, content, err := a.journal.ContentForDate(ctx, day)
	if err != nil {
		Error("lookup failed: %v", err)
		return
	}
	if entry == nil {
		printlnFn("No entry for " + day.Format("January 2, 2006") + ".")
		return
	}

	printlnFn(Bold("%s", entry.Title))
	if entry.MoodRating != nil {
		printlnFn(fmt.Sprintf("Mood: %d/5", *entry.MoodRating))
	}
	printlnFn(content)
}

func (a *App) writeEntry(ctx context.Context) {
	day, err := a.promptDay()
	if err != nil {
		return
	}

	content, err := GetMultiline(a.reader, "Write your entry", os.Stdout)
	if err != nil {
		return
	}

	if _, err := a.journal.SaveForDate(ctx, day, content); err != nil {
		if errors.Is(err, common.ErrValidation) {
			Warning("%v", err)
			return
		}
		Error("save failed: %v", err)
		return
	}
	Success("Entry saved for %s", day.Format("January 2, 2006"))
}

func (a *App) rateMood(ctx context.Context) {
	day, err := a.promptDay()
	if err != nil {
		return
	}

	var rating int
	raw, err := getSimpleText(a.reader, "Mood rating (1-5)", os.Stdout)
	if err != nil {
		return
	}
	if _, err := fmt.Sscanf(raw, "%d", &rating); err != nil {
		Warning("Mood rating must be a number between 1 and 5.")
		return
	}

	switch err := a.journal.SetMood(ctx, day, rating); {
	case errors.Is(err, common.ErrValidation):
		Warning("%v", err)
	case errors.Is(err, common.ErrNotFound):
		printlnFn("No entry for that date yet. Write one first.")
	case err != nil:
		Error("update failed: %v", err)
	default:
		Success("Mood recorded")
	}
}

func (a *App) searchEntries(ctx context.Context) {
	query, err := getSimpleText(a.reader, "Search (empty shows recent entries)", os.Stdout)
	if err != nil {
		return
	}

	entries, err := a.journal.Search(ctx, query)
	if err != nil {
		Error("search failed: %v", err)
		return
	}
	if len(entries) == 0 {
		printlnFn("No matching entries.")
		return
	}
	for _, e := range entries {
		printlnFn(fmt.Sprintf("%d  %s  %s", e.ID, e.CreatedAt.Format("2006-01-02"), e.Preview(50)))
	}
}

func (a *App) listEntries(ctx context.Context) {
	entries, err := a.journal.Search(ctx, "")
	if err != nil {
		Error("listing failed: %v", err)
		return
	}
	if len(entries) == 0 {
		printlnFn("The journal is empty.")
		return
	}
	for _, e := range entries {
		printlnFn(fmt.Sprintf("%d  %s  %s", e.ID, e.CreatedAt.Format("2006-01-02"), e.Preview(50)))
	}
}

func (a *App) deleteEntry(ctx context.Context) {
	day, err := a.promptDay()
	if err != nil {
		return
	}

	entry, _, err := a.journal.ContentForDate(ctx, day)
	if err != nil {
		Error("lookup failed: %v", err)
		return
	}
	if entry == nil {
		printlnFn("No entry for that date.")
		return
	}

	if !Confirm(a.reader, "Delete the entry for "+entry.FormattedDate()+"?", os.Stdout) {
		return
	}
	if err := a.journal.Delete(ctx, entry.ID); err != nil {
		Error("delete failed: %v", err)
		return
	}
	Success("Entry deleted")
}

func (a *App) managePassword(ctx context.Context) {
	action, err := getSimpleText(a.reader, "Password action: set, change, remove", os.Stdout)
	if err != nil {
		return
	}

	switch action {
	case "set":
		password, err := getPassword("New journal password", os.Stdout)
		if err != nil {
			return
		}
		confirm, err := getPassword("Confirm password", os.Stdout)
		if err != nil {
			return
		}
		if password != confirm {
			Warning("Passwords do not match.")
			return
		}
		if err := a.guard.SetPassword(ctx, password); err != nil {
			if errors.Is(err, common.ErrValidation) {
				Warning("%v", err)
				return
			}
			Error("could not set password: %v", err)
			return
		}
		Success("Journal password set")

	case "change":
		current, err := getPassword("Current password", os.Stdout)
		if err != nil {
			return
		}
		newPassword, err := getPassword("New password", os.Stdout)
		if err != nil {
			return
		}
		switch err := a.guard.ChangePassword(ctx, current, newPassword); {
		case errors.Is(err, common.ErrUnauthorized):
			Warning("Incorrect password. %d attempts remaining.", a.guard.RemainingAttempts())
		case errors.Is(err, common.ErrValidation):
			Warning("%v", err)
		case err != nil:
			Error("could not change password: %v", err)
		default:
			Success("Journal password changed")
		}

	case "remove":
		current, err := getPassword("Current password", os.Stdout)
		if err != nil {
			return
		}
		switch err := a.guard.RemovePassword(ctx, current); {
		case errors.Is(err, common.ErrUnauthorized):
			Warning("Incorrect password. %d attempts remaining.", a.guard.RemainingAttempts())
		case err != nil:
			Error("could not remove password: %v", err)
		default:
			Success("Journal password removed")
		}

	default:
		printlnFn("Unknown action:", action)
	}
}

// promptDay asks for a date in YYYY-MM-DD form; an empty answer or
// "today" selects the current day.
func (a *App) promptDay() (time.Time, error) {
	raw, err := getSimpleText(a.reader, "Date (YYYY-MM-DD, empty for today)", os.Stdout)
	if err != nil {
		return time.Time{}, err
	}
	return parseDay(raw)
}

func parseDay(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "today") {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		Warning("Dates must look like 2024-01-15.")
		return time.Time{}, err
	}
	return day, nil
}
