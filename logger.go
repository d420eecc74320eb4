package crtavatar

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gogpu/crtavatar/effects"
	"github.com/gogpu/crtavatar/internal/cache"
	"github.com/gogpu/crtavatar/shape"
	"github.com/gogpu/crtavatar/traits"
)

// nopHandler discards every record. Enabled returns false so log calls
// return before their attributes are built.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h nopHandler) WithGroup(string) slog.Handler           { return h }

var (
	silent = slog.New(nopHandler{})
	logger atomic.Pointer[slog.Logger]
)

func init() {
	logger.Store(silent)
}

// SetLogger sets the logger used by every Generator in the process.
// Passing nil restores the default, which discards everything.
//
// Levels:
//   - [slog.LevelDebug]: resolved traits and per-stage effect timing
//   - [slog.LevelWarn]: override values that name no registered variant
//
// SetLogger may be called while avatars are being generated.
//
//	crtavatar.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the logger installed with SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}

func logUnknownOverride(c shape.Category, value string) {
	Logger().Warn("crtavatar: override names no registered variant",
		"category", string(c), "value", value)
}

func logPaletteFallback(missing []string, fallback string) {
	Logger().Warn("crtavatar: registry palettes have no definition",
		"palettes", missing, "fallback", fallback)
}

func logClosed(scaled cache.Stats) {
	Logger().Debug("crtavatar: generator closed",
		slog.Group("scaledParams",
			"entries", scaled.Len,
			"hits", scaled.Hits,
			"misses", scaled.Misses,
			"hitRate", scaled.HitRate,
			"evictions", scaled.Evictions))
}

func logStage(s effects.Stage, elapsed time.Duration) {
	Logger().Debug("crtavatar: effect stage", "stage", string(s), "elapsed", elapsed)
}

func logGenerated(set traits.Set, size int, elapsed time.Duration) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("crtavatar: generated",
		"seed", set.Seed,
		"resolution", size,
		slog.Group("traits",
			"palette", set.Palette,
			"faceShape", set.FaceShape,
			"hairStyle", set.HairStyle,
			"eyeType", set.EyeType,
			"mouthStyle", set.MouthStyle,
			"accessory", set.Accessory,
			"clothing", set.Clothing,
			"bgPattern", set.BgPattern,
			"pixelStyle", set.PixelStyle),
		"elapsed", elapsed)
}
