package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/agiangrant/inspector/state"
)

// watchDebounce collapses the burst of events an editor save produces.
const watchDebounce = 100 * time.Millisecond

func newWatchCmd(flags *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render whenever the document changes on disk",
		Long: `Watch the document and print the selected output each time it changes.
Press Ctrl+C to stop. A document that fails to load is reported and the last
good state is kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "classes", "css", "html":
			default:
				return fmt.Errorf("invalid --format %q (want classes, css or html)", format)
			}

			s, err := openSession(cmd, flags)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			show := func(snap state.Snapshot) {
				if err := renderWatch(out, flags.color, s, format); err != nil {
					s.log.Error(err, "render failed", "version", snap.Version)
				}
			}
			unsubscribe := s.insp.Store().Subscribe(show)
			defer unsubscribe()

			return watchDocument(ctx, s, cmd.ErrOrStderr(), func() {
				fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s for changes...\n", s.path)
				show(s.insp.Snapshot())
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "classes", "What to print on change: classes, css or html")
	return cmd
}

func renderWatch(w io.Writer, color string, s *session, format string) error {
	switch format {
	case "css":
		return writeCode(w, color, s.insp.CSS(), "css")
	case "html":
		out, err := s.insp.HTML()
		if err != nil {
			return err
		}
		return writeCode(w, color, out, "html")
	}
	_, err := fmt.Fprintln(w, s.insp.Classes())
	return err
}

// watchDocument reloads the session's document each time it changes until ctx
// is done, calling ready once the watch is in place. The parent directory is
// watched so editors that save by renaming a temp file over the document are
// still seen.
func watchDocument(ctx context.Context, s *session, errOut io.Writer, ready func()) error {
	target, err := filepath.Abs(s.path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", s.path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}
	ready()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				s.log.Debug("document changed", "op", event.Op.String())
				pending = time.After(watchDebounce)
			}

		case <-pending:
			pending = nil
			snap, err := s.reload()
			if err != nil {
				s.log.Error(err, "reload failed", "path", s.path)
				fmt.Fprintf(errOut, "Error: %v\n", err)
				continue
			}
			s.log.Debug("document reloaded", "version", snap.Version)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("watcher error", "error", err.Error())
		}
	}
}
