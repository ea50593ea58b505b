// Package pegrt is the runtime support layer of recursive-descent parsers
// generated from Parsing Expression Grammars.
//
// Generated rule functions are built out of the primitives of this package
// and share one *Context per parse attempt:
//
//     MatchLiteral(ctx, lit), ParseLiteral(ctx, lit, exp)
//     MatchCharClass(ctx, cls, inverted), ParseCharClass(ctx, cls, exp, inverted)
//     ParseAny(ctx), ParseEOF(ctx)
//     ctx.AllocResult(begin, end, n), Wrap(ctx, begin, children), FreeResult(r)
//     ctx.Fail(exp), ctx.PushSilent(), ctx.PopSilent()
//
// A primitive that matches returns a new *Result leaf and moves the cursor
// past the matched bytes. One that does not match leaves the cursor alone,
// reports what it expected to the failure tracker and returns the Failed
// sentinel. Failing is the normal way PEG choices and repetitions work, so
// it is never an error.
//
// Result trees
//
// A Result is a byte range of the input plus the child nodes it owns, in
// grammar order. Nodes come from a per-context allocator and are released
// with Free, which releases the whole subtree. The Failed and Nil sentinels
// are shared and never released.
//
// Diagnostics
//
// The context remembers the furthest position at which any primitive failed
// and every descriptor recorded there (see FailInfo). After a parse fails it
// is the most likely location of the real error. Lookahead predicates
// silence the tracker with PushSilent/PopSilent.
//
// Rule tables
//
// A Table maps rule names to rule functions, sorted by name length and then
// bytes, so tools can start parsing from any rule by name:
//
//     Parse(table, input, "Expr", nil)
//
// Combinators such as Seq, Choice, Repeat, And, Not and Named assemble rule
// functions the way a grammar compiler would, which makes hand written
// grammars possible too.
package pegrt // import "github.com/hucsmn/pegrt"

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultNodeLimit is the default maximum of live result nodes per parse.
const DefaultNodeLimit = 1 << 20

var (
	defaultConfig = Config{
		DisableLineColumnCounting: false,
		NodeLimit:                 DefaultNodeLimit,
		Logger:                    nil,
	}
)

type (
	// Config contains configuration for parsing.
	Config struct {
		// Determines if line and column tracking is disabled, leaving
		// positions with offsets only.
		DisableLineColumnCounting bool

		// Maximum number of live result nodes, zero or negative for unlimited.
		NodeLimit int

		// Receives debug traces of parse runs, nil for none.
		Logger logrus.FieldLogger
	}

	// ParseError is the diagnostic of a parse that did not match: the
	// furthest failure position and what was expected there.
	ParseError struct {
		Rule     string
		Pos      Position
		Expected []*Expected
	}
)

// DefaultConfig returns a copy of the default configuration.
func DefaultConfig() Config {
	return defaultConfig
}

// Parse runs rule start of table over input using the default
// configuration. An empty start selects the table's start rule.
// The options are handed to rule functions through Context.Options.
func Parse(table *Table, input []byte, start string, options interface{}) (*Result, error) {
	return defaultConfig.Parse(table, input, start, options)
}

// Parse runs rule start of table over input.
//
// It returns the tree on success, which the caller must release with Free.
// A rule that does not match yields a *ParseError built from the furthest
// failure; running out of nodes or an unknown rule yields other errors.
func (cfg Config) Parse(table *Table, input []byte, start string, options interface{}) (*Result, error) {
	if table == nil {
		return nil, errorNilTable
	}
	if start == "" {
		start = table.Start()
		if start == "" {
			return nil, errorEmptyTable
		}
	}
	rule, ok := table.Find([]byte(start))
	if !ok {
		return nil, errors.Wrapf(ErrUnknownRule, "start rule %q", start)
	}

	log := cfg.logger().WithField("rule", start)
	log.WithField("size", len(input)).Debug("parse started")

	ctx := cfg.NewContext(input, options)
	r := rule(ctx)
	if err := ctx.Err(); err != nil {
		freeAll([]*Result{r})
		log.WithError(err).Debug("parse aborted")
		return nil, errors.Wrapf(err, "parsing rule %q at %s", start, ctx.Pos())
	}
	if r == Failed {
		perr := newParseError(start, &ctx.Failures)
		log.WithFields(logrus.Fields{
			"pos":      perr.Pos.String(),
			"expected": len(perr.Expected),
		}).Debug("parse failed")
		return nil, perr
	}

	log.WithFields(logrus.Fields{
		"consumed": ctx.Offset(),
		"nodes":    ctx.LiveNodes(),
	}).Debug("parse matched")
	return r, nil
}

func (cfg Config) logger() logrus.FieldLogger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return discard
}

// Builds the diagnostic, dropping repeated descriptors.
func newParseError(rule string, info *FailInfo) *ParseError {
	perr := &ParseError{Rule: rule, Pos: info.Pos}
	seen := make(map[Expected]bool, len(info.Expected))
	for _, exp := range info.Expected {
		if seen[*exp] {
			continue
		}
		seen[*exp] = true
		perr.Expected = append(perr.Expected, exp)
	}
	return perr
}

func (perr *ParseError) Error() string {
	var where string
	if perr.Pos.Line > 0 {
		where = fmt.Sprintf("%d:%d", perr.Pos.Line, perr.Pos.Column)
	} else {
		where = fmt.Sprintf("offset %d", perr.Pos.Offset)
	}

	msgs := make([]string, len(perr.Expected))
	for i, exp := range perr.Expected {
		msgs[i] = exp.Message
	}
	switch len(msgs) {
	case 0:
		return fmt.Sprintf("pegrt: %s: rule %q did not match", where, perr.Rule)
	case 1:
		return fmt.Sprintf("pegrt: %s: expected %s", where, msgs[0])
	default:
		return fmt.Sprintf("pegrt: %s: expected %s or %s",
			where, strings.Join(msgs[:len(msgs)-1], ", "), msgs[len(msgs)-1])
	}
}
