// Package export drives a complete camera movement export: it picks the
// encoder, runs the raw sampler off a ticker, persists the file and reports
// where it went.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zeusync/moco/internal/core/axis"
	"github.com/zeusync/moco/internal/core/curves"
	"github.com/zeusync/moco/internal/core/export/arcmove"
	"github.com/zeusync/moco/internal/core/export/rawmove"
	"github.com/zeusync/moco/internal/core/host"
	"github.com/zeusync/moco/internal/core/observability/log"
	"github.com/zeusync/moco/internal/core/resolver"
)

const (
	DefaultFileName     = "CameraMovement"
	DefaultTickInterval = 50 * time.Millisecond
)

type Options struct {
	// FileName is the output name without extension.
	FileName     string
	Format       Format
	TickInterval time.Duration
}

func (o Options) withDefaults() Options {
	if o.FileName == "" {
		o.FileName = DefaultFileName
	}
	if o.TickInterval <= 0 {
		o.TickInterval = DefaultTickInterval
	}
	return o
}

type Exporter struct {
	host     host.Host
	storage  host.Storage
	registry *axis.Registry
	curves   *curves.Accessor
	sampler  *rawmove.Sampler
	log      log.Log

	opts     Options
	job      string
	lastPath string
}

func New(
	h host.Host,
	storage host.Storage,
	registry *axis.Registry,
	res *resolver.Resolver,
	accessor *curves.Accessor,
	l log.Log,
) *Exporter {
	e := &Exporter{
		host:     h,
		storage:  storage,
		registry: registry,
		curves:   accessor,
		log:      l.Named("export"),
	}
	e.sampler = rawmove.NewSampler(h, h, res, e.persistRaw, l)
	return e
}

// InProgress reports whether a raw export is still sampling.
func (e *Exporter) InProgress() bool { return e.sampler.IsActive() }

// LastPath is where the most recent export was written.
func (e *Exporter) LastPath() string { return e.lastPath }

// Start begins an export. Arc Move completes before Start returns and yields
// the written path; Raw Move starts sampling and completes on a later Tick.
// Start owns timer: the sampler stops it when raw sampling finishes or is
// cancelled, and every other return path, rejections included, stops it
// before returning.
func (e *Exporter) Start(opts Options, timer rawmove.Timer) (string, error) {
	if e.InProgress() {
		stopTimer(timer)
		return "", ErrExportInProgress
	}
	opts = opts.withDefaults()
	e.opts = opts
	e.job = uuid.NewString()
	e.log.Info("export started",
		log.String("job", e.job),
		log.String("format", opts.Format.String()),
		log.String("file", opts.FileName),
		log.Int("axes", e.registry.Len()),
	)

	switch opts.Format {
	case FormatArc:
		stopTimer(timer)
		return e.exportArc()
	case FormatRaw:
		if err := e.sampler.Start(timer); err != nil {
			stopTimer(timer)
			return "", fmt.Errorf("start raw move: %w", err)
		}
		return "", nil
	default:
		stopTimer(timer)
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, opts.Format)
	}
}

func stopTimer(timer rawmove.Timer) {
	if timer != nil {
		timer.Stop()
	}
}

// Tick advances a raw export by one frame.
func (e *Exporter) Tick() (rawmove.State, error) {
	return e.sampler.Tick()
}

// Cancel aborts a running raw export; nothing is written.
func (e *Exporter) Cancel() bool {
	if !e.sampler.Cancel() {
		return false
	}
	e.log.Info("export cancelled", log.String("job", e.job), log.Int("frame", e.host.Frame()))
	return true
}

// Run performs a whole export, ticking raw sampling every TickInterval until
// the range is covered or ctx is done.
func (e *Exporter) Run(ctx context.Context, opts Options) (string, error) {
	opts = opts.withDefaults()
	if opts.Format != FormatRaw {
		return e.Start(opts, nil)
	}

	ticker := time.NewTicker(opts.TickInterval)
	if _, err := e.Start(opts, ticker); err != nil {
		return "", err
	}
	for {
		select {
		case <-ctx.Done():
			e.Cancel()
			return "", ctx.Err()
		case <-ticker.C:
			state, err := e.Tick()
			if err != nil {
				return "", err
			}
			if state == rawmove.StateDone {
				return e.lastPath, nil
			}
		}
	}
}

func (e *Exporter) exportArc() (string, error) {
	defs := e.registry.Definitions()
	axes := make([]arcmove.Axis, len(defs))
	for i, def := range defs {
		axes[i] = arcmove.Axis{
			Label:     def.Label,
			Component: def.Component,
			Keyframes: e.curves.Keyframes(i, def.Component),
		}
	}

	doc := arcmove.Encode(axes, e.host.Start(), e.host.End(), e.host.UnitSettings())
	data, err := doc.Marshal()
	if err != nil {
		return "", err
	}
	return e.persist(data)
}

func (e *Exporter) persistRaw(table rawmove.Table) error {
	_, err := e.persist(rawmove.Format(table))
	return err
}

func (e *Exporter) persist(data []byte) (string, error) {
	name := e.opts.FileName + e.opts.Format.Extension()
	path, err := e.storage.Save(name, data)
	if err != nil {
		return "", fmt.Errorf("save %s: %w", name, err)
	}
	e.lastPath = path
	e.host.Report(fmt.Sprintf("Camera movement exported as %s to %s", e.opts.Format.description(), path))
	e.log.Info("export finished",
		log.String("job", e.job),
		log.String("path", path),
		log.Int("bytes", len(data)),
	)
	return path, nil
}
