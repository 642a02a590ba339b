package gcode

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// FeedPolicy decides what happens to a move that covers a distance while the
// feed rate is zero, negative or was never set.
type FeedPolicy int

const (
	// FeedReject fails the estimate with a *DegenerateSpeedError.
	FeedReject FeedPolicy = iota
	// FeedSkip counts the move as taking no time.
	FeedSkip
)

func (fp FeedPolicy) String() string {
	switch fp {
	case FeedReject:
		return "reject"
	case FeedSkip:
		return "skip"
	}
	return fmt.Sprintf("FeedPolicy(%d)", int(fp))
}

// ParseFeedPolicy converts "reject" or "skip" to a FeedPolicy.
func ParseFeedPolicy(s string) (FeedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reject":
		return FeedReject, nil
	case "skip":
		return FeedSkip, nil
	}
	return 0, fmt.Errorf("gcode: unknown feed policy: %q", s)
}

type options struct {
	feedPolicy  FeedPolicy
	defaultFeed float64
	modal       bool
	logger      *zap.Logger
}

// Option configures an estimate.
type Option func(*options)

// WithFeedPolicy sets how moves without a usable feed rate are handled. The
// default is FeedReject.
func WithFeedPolicy(fp FeedPolicy) Option {
	return func(o *options) {
		o.feedPolicy = fp
	}
}

// WithDefaultFeed sets the feed rate (mm/min) in effect before the program sets one.
func WithDefaultFeed(feed float64) Option {
	return func(o *options) {
		o.defaultFeed = feed
	}
}

// WithModal enables G90/G91 distance modes, G20/G21 units and G92 position
// resets. Without it every X, Y and Z is an absolute position in millimeters.
func WithModal(modal bool) Option {
	return func(o *options) {
		o.modal = modal
	}
}

// WithLogger sets the logger used for warnings and per program summaries.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		feedPolicy: FeedReject,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
