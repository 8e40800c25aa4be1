package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/weave"
	"github.com/aretw0/weave/pkg/adapters/fs"
	"github.com/aretw0/weave/pkg/manifest"
)

var (
	buildManifest string
	buildOutput   string
	buildWatch    bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble a document from a manifest",
	Long: `Build loads a YAML manifest, assembles the described document and
writes the rendered output to stdout or, with --output, atomically to a file.
With --watch the manifest and its included files are observed and the output
is rebuilt on every change.`,
	Run: func(cmd *cobra.Command, args []string) {
		if buildWatch && buildOutput == "" {
			fatal("invalid flags", fmt.Errorf("--watch requires --output"))
		}

		if err := buildOnce(); err != nil {
			fatal("build failed", err)
		}

		if buildWatch {
			if err := watchAndRebuild(cmd.Context()); err != nil {
				fatal("watch failed", err)
			}
		}
	},
}

// buildOnce loads the manifest fresh and emits the document, so repeated
// invocations pick up manifest edits.
func buildOnce() error {
	m, err := manifest.LoadFile(buildManifest)
	if err != nil {
		return err
	}

	doc, err := m.Document(weave.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	if buildOutput == "" {
		r, err := doc.Stream()
		if err != nil {
			return err
		}
		_, err = io.Copy(os.Stdout, r)
		return err
	}

	if err := fs.WriteDocument(buildOutput, doc); err != nil {
		return err
	}
	slog.Debug("document written", "path", buildOutput)
	return nil
}

func watchAndRebuild(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, err := manifest.LoadFile(buildManifest)
	if err != nil {
		return err
	}

	paths := []string{buildManifest}
	for _, pattern := range m.Includes() {
		paths = append(paths, globRoot(pattern))
	}

	w := fs.NewWatcher(fs.WatchConfig{
		Paths:  paths,
		Logger: slog.Default(),
		Rebuild: func(context.Context) error {
			return buildOnce()
		},
	})
	if err := w.Start(ctx); err != nil {
		return err
	}
	slog.Info("watching for changes", "manifest", buildManifest)

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return w.Stop(stopCtx)
}

// globRoot returns the longest pattern prefix free of glob metacharacters,
// which is the directory to watch for matches appearing or changing.
func globRoot(pattern string) string {
	dir := pattern
	for dir != "." && dir != string(filepath.Separator) {
		if !hasGlobMeta(filepath.Base(dir)) {
			return dir
		}
		dir = filepath.Dir(dir)
	}
	return dir
}

func hasGlobMeta(s string) bool {
	for _, r := range s {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildManifest, "file", "f", "weave.yaml", "Path to the manifest file")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Write the document to this path instead of stdout")
	buildCmd.Flags().BoolVar(&buildWatch, "watch", false, "Rebuild whenever the manifest or included files change")
}
