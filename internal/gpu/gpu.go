// Package gpu resolves a display adapter name on a best-effort basis.
//
// Lookups never fail the caller: any spawn error, timeout, non-zero exit or
// blank output falls through to the next query and finally to NotFound.
// Platform query lists live in the per-OS files.
package gpu

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// NotFound is returned whenever no adapter name could be determined.
const NotFound = "GPU not found"

// DefaultTimeout bounds each lookup so a hung query can't stall startup.
const DefaultTimeout = 3 * time.Second

// Resolver returns a GPU name, or NotFound.
type Resolver interface {
	Resolve(ctx context.Context) string
}

// Query is one external command to try, with a parser for its stdout.
// A nil Parse takes the first non-empty line.
type Query struct {
	Name  string
	Args  []string
	Parse func(output string) string
}

// CommandResolver runs its queries in order and returns the first non-empty result.
type CommandResolver struct {
	Queries []Query
	Timeout time.Duration
	Logger  *log.Logger
}

// NewCommandResolver creates a resolver over the given queries.
// A non-positive timeout uses DefaultTimeout.
func NewCommandResolver(timeout time.Duration, queries ...Query) *CommandResolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &CommandResolver{Queries: queries, Timeout: timeout}
}

// Resolve implements Resolver.
func (r *CommandResolver) Resolve(ctx context.Context) string {
	for _, q := range r.Queries {
		if name := r.run(ctx, q); name != "" {
			return name
		}
	}
	return NotFound
}

func (r *CommandResolver) run(ctx context.Context, q Query) string {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, q.Name, q.Args...)
	// Children that inherit stdout would otherwise keep Output waiting past the timeout.
	cmd.WaitDelay = r.Timeout / 4

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		r.debug("gpu query failed", "cmd", q.Name, "err", err)
		return ""
	}

	parse := q.Parse
	if parse == nil {
		parse = FirstLine
	}
	name := strings.TrimSpace(parse(strings.ToValidUTF8(stdout.String(), "")))
	if name == "" {
		r.debug("gpu query returned nothing", "cmd", q.Name)
	}
	return name
}

func (r *CommandResolver) debug(msg string, keyvals ...interface{}) {
	if r.Logger != nil {
		r.Logger.Debug(msg, keyvals...)
	}
}

// Chain tries each resolver in turn until one returns something other than NotFound.
type Chain []Resolver

// Resolve implements Resolver.
func (c Chain) Resolve(ctx context.Context) string {
	for _, r := range c {
		if name := strings.TrimSpace(r.Resolve(ctx)); name != "" && name != NotFound {
			return name
		}
	}
	return NotFound
}

// Default returns the resolver for the current platform.
func Default(timeout time.Duration, logger *log.Logger) Resolver {
	return platformResolver(timeout, logger)
}
