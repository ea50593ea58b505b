package pegrt

import (
	"fmt"
)

var (
	// ErrNodeLimit reports that a parse allocated more live result nodes
	// than Config.NodeLimit allows.
	ErrNodeLimit = errorf("result node limit is reached")

	// ErrUnknownRule reports a start rule missing from the rule table.
	ErrUnknownRule = errorf("unknown rule")

	errorNilTable        = errorf("the rule table is nil")
	errorEmptyTable      = errorf("the rule table has no start rule")
	errorInvalidRange    = errorf("invalid result range")
	errorNegativeCount   = errorf("negative child count")
	errorFailedChild     = errorf("failed result adopted as a child")
	errorNilChild        = errorf("nil result adopted as a child")
	errorDoubleFree      = errorf("result released twice")
	errorSilenceUnderrun = errorf("silence depth underrun")

	errorNilRule = func(name string) error {
		return errorf("rule %q has no function", name)
	}

	errorDuplicateRule = func(name string) error {
		return errorf("rule %q is defined twice", name)
	}

	errorInvalidClassRange = func(low, high byte) error {
		return errorf("class range %q-%q is not strictly increasing", low, high)
	}

	errorOddClassRanges = func(n int) error {
		return errorf("class ranges hold %d bytes, want pairs", n)
	}
)

type pegError struct {
	value string
}

func errorf(format string, v ...interface{}) error {
	return &pegError{fmt.Sprintf(format, v...)}
}

func (err *pegError) Error() string {
	return "pegrt: " + err.value
}
