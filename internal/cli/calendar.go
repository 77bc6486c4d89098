package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/origami-app/origami/internal/common"
	"github.com/origami-app/origami/internal/models"
)

// AddEvent prompts for the fields of a new calendar event and stores it.
func (a *App) AddEvent(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Event title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	raw, err := getSimpleText(a.reader, "Date (YYYY-MM-DD, empty for today)", os.Stdout)
	if err != nil {
		return err
	}
	day, err := parseDay(raw)
	if err != nil {
		return nil
	}

	priority, err := getSimpleText(a.reader, "Priority: normal, next_important, important (empty for normal)", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.calendar.Add(ctx, title, description, day, priority); err != nil {
		if errors.Is(err, common.ErrValidation) {
			Warning("%v", err)
			return nil
		}
		Error("could not add event: %v", err)
		return err
	}
	Success("Event added")
	return nil
}

// ListEvents prints every event in date order.
func (a *App) ListEvents(ctx context.Context) error {
	all, err := a.calendar.List(ctx)
	if err != nil {
		Error("listing failed: %v", err)
		return err
	}
	if len(all) == 0 {
		printlnFn("The calendar is empty.")
		return nil
	}
	for _, e := range all {
		printEvent(&e)
	}
	return nil
}

// Agenda prints the next few upcoming events.
func (a *App) Agenda(ctx context.Context) error {
	upcoming, err := a.calendar.Upcoming(ctx, time.Now(), 5)
	if err != nil {
		Error("agenda failed: %v", err)
		return err
	}
	if len(upcoming) == 0 {
		printlnFn("Nothing coming up.")
		return nil
	}
	for _, e := range upcoming {
		printEvent(&e)
	}
	return nil
}

// DeleteEvent removes an event after confirmation.
func (a *App) DeleteEvent(ctx context.Context) error {
	id, err := a.promptID("Event id")
	if err != nil {
		return nil
	}
	if !Confirm(a.reader, "Delete this event?", os.Stdout) {
		return nil
	}
	if err := a.calendar.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No event with that id.")
			return nil
		}
		Error("delete failed: %v", err)
		return err
	}
	Success("Event deleted")
	return nil
}

func printEvent(e *models.CalendarEvent) {
	line := fmt.Sprintf("%d  %s  %s [%s]", e.ID, e.EventDate.Format("2006-01-02"), e.Title, e.PriorityDisplay())
	if e.Description != "" {
		line += ": " + e.Description
	}
	printlnFn(line)
}
