// Package rpn is a reverse polish calculator whose parser is built on the
// pegrt runtime.
package rpn // import "github.com/hucsmn/pegrt/example/rpn"

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/hucsmn/pegrt"
)

var (
	Builtins = map[string]Primitive{
		"+": Add,
		"-": Sub,
		"*": Mul,
		"/": Div,
		"%": Mod,

		"SWAP": Swap,
		"DUP":  Dup,
		"DROP": Drop,

		".":       Show,
		"EMIT":    Emit,
		"<STACK>": ViewStack,
		"<VOCAB>": ViewVocabulary,
	}

	errorStackUnderflow = errors.New("stack underflow")
	errorDivisionByZero = errors.New("division by zero")
)

type (
	// State is the stack and vocabulary of a calculator.
	State struct {
		stack []int
		vocab map[string]Primitive
		out   io.Writer
	}

	Primitive func(*State) error
)

// NewState returns a calculator knowing the words of vocab and printing
// to standard output.
func NewState(vocab map[string]Primitive) *State {
	copied := make(map[string]Primitive)
	for name, prim := range vocab {
		if prim != nil {
			name = strings.ToUpper(name)
			copied[name] = prim
		}
	}
	return &State{vocab: copied, out: os.Stdout}
}

// SetOutput redirects what the calculator prints.
func (s *State) SetOutput(w io.Writer) {
	s.out = w
}

// Stack returns a copy of the stack, bottom first.
func (s *State) Stack() []int {
	return append([]int(nil), s.stack...)
}

// Calculate parses and runs source with the default configuration.
func (s *State) Calculate(source string) error {
	return s.CalculateWith(pegrt.DefaultConfig(), source)
}

// CalculateWith parses source using cfg and runs it.
func (s *State) CalculateWith(cfg pegrt.Config, source string) error {
	input := []byte(source)
	tree, err := cfg.Parse(Grammar, input, "Program", s)
	if err != nil {
		return err
	}
	defer tree.Free()
	return s.Eval(tree, input)
}

// Eval runs the words of a tree produced by the Program rule.
func (s *State) Eval(program *pegrt.Result, input []byte) error {
	if program.IsFailed() || len(program.Children()) != 3 {
		return errors.Errorf("not a program tree: %s", program)
	}
	for _, seq := range program.Child(1).Children() {
		if err := s.exec(seq.Child(0), input); err != nil {
			return err
		}
	}
	return nil
}

func (s *State) exec(word *pegrt.Result, input []byte) error {
	text := string(word.Text(input))
	if !word.IsLeaf() {
		x, err := strconv.ParseInt(text, 0, 0)
		if err != nil {
			return errors.Errorf("invalid number %q at offset %d", text, word.Begin())
		}
		s.Push(int(x))
		return nil
	}

	prim := s.Lookup(text)
	if prim == nil {
		return errors.Errorf("undefined verb %q at offset %d", text, word.Begin())
	}
	return errors.Wrapf(prim(s), "verb %q at offset %d", text, word.Begin())
}

// Instructions.

func (s *State) Push(xs ...int) {
	s.stack = append(s.stack, xs...)
}

func (s *State) Pop(n int) (xs []int, err error) {
	if len(s.stack) < n {
		return nil, errorStackUnderflow
	}

	xs = append([]int(nil), s.stack[len(s.stack)-n:]...)
	s.stack = s.stack[:len(s.stack)-n]
	return xs, nil
}

func (s *State) Define(name string, prim Primitive) {
	name = strings.ToUpper(name)
	if s.vocab == nil {
		s.vocab = make(map[string]Primitive)
	}
	s.vocab[name] = prim
}

func (s *State) Lookup(name string) Primitive {
	name = strings.ToUpper(name)
	return s.vocab[name]
}

// Primitives.

func Add(s *State) error {
	xs, err := s.Pop(2)
	if err != nil {
		return err
	}
	s.Push(xs[0] + xs[1])
	return nil
}

func Sub(s *State) error {
	xs, err := s.Pop(2)
	if err != nil {
		return err
	}
	s.Push(xs[0] - xs[1])
	return nil
}

func Mul(s *State) error {
	xs, err := s.Pop(2)
	if err != nil {
		return err
	}
	s.Push(xs[0] * xs[1])
	return nil
}

func Div(s *State) error {
	xs, err := s.Pop(2)
	if err != nil {
		return err
	}
	if xs[1] == 0 {
		return errorDivisionByZero
	}
	s.Push(xs[0] / xs[1])
	return nil
}

func Mod(s *State) error {
	xs, err := s.Pop(2)
	if err != nil {
		return err
	}
	if xs[1] == 0 {
		return errorDivisionByZero
	}
	s.Push(xs[0] % xs[1])
	return nil
}

func Swap(s *State) error {
	xs, err := s.Pop(2)
	if err != nil {
		return err
	}
	s.Push(xs[1], xs[0])
	return nil
}

func Dup(s *State) error {
	xs, err := s.Pop(1)
	if err != nil {
		return err
	}
	s.Push(xs[0], xs[0])
	return nil
}

func Drop(s *State) error {
	_, err := s.Pop(1)
	return err
}

func Show(s *State) error {
	xs, err := s.Pop(1)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, xs[0])
	return nil
}

func Emit(s *State) error {
	xs, err := s.Pop(1)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%c", rune(xs[0]))
	return nil
}

func ViewStack(s *State) error {
	fmt.Fprintf(s.out, "stack: %d\n", s.stack)
	return nil
}

func ViewVocabulary(s *State) error {
	strs := make([]string, 0, len(s.vocab))
	for name := range s.vocab {
		strs = append(strs, name)
	}
	sort.Strings(strs)
	fmt.Fprintf(s.out, "vocabulary: %q\n", strs)
	return nil
}
