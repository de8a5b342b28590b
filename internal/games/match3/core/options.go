package core

import (
	"io"

	"github.com/charmbracelet/log"
)

// DefaultMaxShuffles is the shuffle retry cap used when none is configured.
const DefaultMaxShuffles = 100

// options holds settings shared by Resolver and Board.
type options struct {
	matcher     Matcher
	listener    Listener
	logger      *log.Logger
	maxShuffles int
}

// Option configures a Resolver or a Board. Options that do not apply to the
// value being built are ignored.
type Option func(*options)

// WithMatcher sets the matching rules.
func WithMatcher(m Matcher) Option {
	return func(o *options) {
		o.matcher = m
	}
}

// WithListener sets the event listener.
func WithListener(l Listener) Option {
	return func(o *options) {
		o.listener = l
	}
}

// WithLogger sets the structured logger. A nil logger discards output.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMaxShuffles caps reshuffles per settle cycle. 0 means unbounded.
func WithMaxShuffles(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxShuffles = n
	}
}

func buildOptions(opts []Option) options {
	o := options{maxShuffles: DefaultMaxShuffles}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	return o
}
