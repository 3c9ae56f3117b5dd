// Package app exports scene files end to end: load, assemble a session,
// export and persist.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zeusync/moco/internal/config"
	"github.com/zeusync/moco/internal/core/events/bus"
	"github.com/zeusync/moco/internal/core/export"
	"github.com/zeusync/moco/internal/core/host"
	"github.com/zeusync/moco/internal/core/host/filestore"
	"github.com/zeusync/moco/internal/core/observability/log"
	"github.com/zeusync/moco/internal/injector"
	"github.com/zeusync/moco/internal/scene"
	"github.com/zeusync/moco/pkg/concurrent"
)

// Result is the outcome of one scene export.
type Result struct {
	Scene string
	Path  string
}

// Run exports every scene into the configured output directory, at most
// cfg.Workers at a time. When several scenes are exported their file names
// are suffixed with the scene file stem, so stems must be unique.
func Run(ctx context.Context, cfg config.Config, scenes []string, l log.Log) ([]Result, error) {
	if len(scenes) == 0 {
		return nil, ErrNoScenes
	}
	if len(scenes) > 1 {
		if err := uniqueStems(scenes); err != nil {
			return nil, err
		}
	}
	opts, err := cfg.ExportOptions()
	if err != nil {
		return nil, err
	}
	store, err := filestore.New(cfg.Export.Out, l)
	if err != nil {
		return nil, err
	}

	return concurrent.Map(ctx, scenes, cfg.Workers, func(ctx context.Context, path string) (Result, error) {
		sceneOpts := opts
		if len(scenes) > 1 {
			sceneOpts.FileName = opts.FileName + "_" + stem(path)
		}
		out, err := ExportScene(ctx, path, store, sceneOpts, l.With(log.String("scene", path)))
		if err != nil {
			return Result{}, fmt.Errorf("export %s: %w", path, err)
		}
		return Result{Scene: path, Path: out}, nil
	})
}

// ExportScene loads one scene file and exports it to storage.
func ExportScene(ctx context.Context, path string, storage host.Storage, opts export.Options, l log.Log) (string, error) {
	f, err := scene.LoadFile(path)
	if err != nil {
		return "", err
	}

	b := bus.New()
	h, defs, err := f.Build(b, l)
	if err != nil {
		return "", err
	}
	sess, err := injector.InitializeSession(b, h, storage, l)
	if err != nil {
		return "", err
	}
	defer sess.Close()

	if err = sess.Load(defs); err != nil {
		return "", err
	}
	h.SetFrame(f.CurrentFrame(h))

	return sess.Exporter.Run(ctx, opts)
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func uniqueStems(scenes []string) error {
	seen := make(map[string]string, len(scenes))
	for _, path := range scenes {
		s := stem(path)
		if prev, ok := seen[s]; ok {
			return fmt.Errorf("%w: %s and %s", ErrDuplicateScene, prev, path)
		}
		seen[s] = path
	}
	return nil
}
