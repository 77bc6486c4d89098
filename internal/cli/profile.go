package cli

import (
	"context"
	"errors"
	"os"

	"github.com/origami-app/origami/internal/common"
)

// ShowProfile prints the stored profile fields.
func (a *App) ShowProfile(ctx context.Context) error {
	p, err := a.profile.Get(ctx)
	if err != nil {
		Error("could not load profile: %v", err)
		return err
	}

	printlnFn(Bold("%s", p.Name))
	if p.Handle != "" {
		printlnFn("Handle: @" + p.Handle)
	}
	if p.Email != "" {
		printlnFn("Email: " + p.Email)
	}
	if p.MemberSince != "" {
		printlnFn("Member since: " + p.MemberSince)
	}
	if p.LastUpdated != "" {
		printlnFn("Last updated: " + p.LastUpdated)
	}
	printlnFn("Theme: " + p.Theme)

	enabled, err := a.profile.NotificationsEnabled(ctx)
	if err == nil {
		if enabled {
			printlnFn("Reminders: on")
		} else {
			printlnFn("Reminders: off")
		}
	}
	return nil
}

// EditProfile prompts for new profile values; empty answers keep the
// current ones.
func (a *App) EditProfile(ctx context.Context) error {
	p, err := a.profile.Get(ctx)
	if err != nil {
		Error("could not load profile: %v", err)
		return err
	}

	for _, f := range []struct {
		prompt string
		dest   *string
	}{
		{"Name", &p.Name},
		{"Handle", &p.Handle},
		{"Email", &p.Email},
	} {
		answer, err := getSimpleText(a.reader, f.prompt+" (empty keeps \""+*f.dest+"\")", os.Stdout)
		if err != nil {
			return err
		}
		if answer != "" {
			*f.dest = answer
		}
	}

	if err := a.profile.Save(ctx, p); err != nil {
		if errors.Is(err, common.ErrValidation) {
			Warning("%v", err)
			return nil
		}
		Error("could not save profile: %v", err)
		return err
	}

	theme, err := getSimpleText(a.reader, "Theme: dark or light (empty keeps "+p.Theme+")", os.Stdout)
	if err != nil {
		return err
	}
	if theme != "" {
		if err := a.profile.SetTheme(ctx, theme); err != nil {
			if errors.Is(err, common.ErrValidation) {
				Warning("%v", err)
				return nil
			}
			Error("could not switch theme: %v", err)
			return err
		}
	}

	if answer, err := getSimpleText(a.reader, "Reminders: on or off (empty keeps current)", os.Stdout); err == nil {
		switch answer {
		case "on":
			_ = a.profile.SetNotificationsEnabled(ctx, true)
		case "off":
			_ = a.profile.SetNotificationsEnabled(ctx, false)
		}
	}

	Success("Profile saved")
	return nil
}
