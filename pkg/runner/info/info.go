// Package info reports where entries are stored.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
	// Out defaults to color.Output.
	Out io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv(store.ConfigPathEnv); override != "" {
		_, _ = fmt.Fprintln(out, store.ConfigPathEnv, "found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, store.ConfigPathEnv, "env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if f := store.ConfigFile(n.Config); f != "" {
		_, _ = fmt.Fprintln(out, "Config file:", f)
	}
	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.alert_delay:", n.Config.AlertDelay())

	if n.Service == nil || n.Service.Persistence == nil {
		return errors.New("failed to create persistence object")
	}

	entries, err := n.Service.Entries(ctx)
	if err != nil {
		return err
	}
	switch len(entries) {
	case 0:
		_, _ = fmt.Fprintln(out, "Entries: none")
	default:
		_, _ = fmt.Fprintf(out, "Entries: %d\n", len(entries))
	}
	return nil
}
