// Package options defines shared flag helpers for CLI commands.
package options

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/dates"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/timeutil"
)

// AddOptions captures the flags of an annotation being added.
type AddOptions struct {
	Name     string
	OnString string
	Ago      string
	MoodName string
	Note     string
}

func AddAddArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Record the annotation on a specific day, example: --on="2024-02-28". Defaults to today.`)
	cmd.Flags().StringVar(&o.Ago, "ago", "",
		`Record the annotation a number of days back, example: --ago=2d or --ago=1w.`)
	cmd.Flags().StringVarP(&o.MoodName, "mood", "m", "",
		"Mood for the day: sad, neutral, good or great (see 'moodlog key').")
	cmd.Flags().StringVarP(&o.Note, "note", "n", "",
		"Free-text note for the day.")
}

// GetOn returns the validated --on or --ago day, or "" for today.
func (o *AddOptions) GetOn(clock dates.Clock) (string, error) {
	if o.OnString != "" && o.Ago != "" {
		return "", errors.New("--on and --ago can not be used together")
	}
	if o.Ago != "" {
		days, _, err := timeutil.ParseDays(o.Ago)
		if err != nil {
			return "", err
		}
		return dates.Today(clock.Now().AddDate(0, 0, -days)), nil
	}
	if o.OnString == "" {
		return "", nil
	}
	t, err := dates.Parse(o.OnString)
	if err != nil {
		return "", err
	}
	return t.Format(dates.LayoutISO), nil
}

// GetMood parses --mood.
func (o *AddOptions) GetMood() (mood.Mood, error) {
	return mood.Parse(o.MoodName)
}
