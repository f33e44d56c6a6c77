package script

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
	"singlelist/list"
	"singlelist/util"
)

const (
	PUSH_FRONT   = "push-front"
	POP_FRONT    = "pop-front"
	INSERT_AFTER = "insert-after"
	ERASE_AFTER  = "erase-after"
	CLEAR        = "clear"
	FILTER       = "filter"

	// BEFORE_BEGIN is the position operand naming the slot before the first element.
	BEFORE_BEGIN = -1
)

// Operation is one parsed list edit, e.g. "insert-after:2:value".
type Operation struct {
	Kind     string
	Position int
	Value    string
}

func (op Operation) String() string {
	switch op.Kind {
	case PUSH_FRONT:
		return fmt.Sprintf("%v:%v", op.Kind, op.Value)
	case INSERT_AFTER:
		return fmt.Sprintf("%v:%v:%v", op.Kind, op.Position, op.Value)
	case ERASE_AFTER:
		return fmt.Sprintf("%v:%v", op.Kind, op.Position)
	}
	return op.Kind
}

func badOperation(format string, v ...interface{}) error {
	return &util.ErrorWithCode{
		StatusCode:    util.ERROR_BAD_OPERATION,
		InternalError: fmt.Errorf(format, v...),
	}
}

func parsePosition(text string, operation string) (int, error) {
	position, err := strconv.Atoi(text)
	if err != nil || position < BEFORE_BEGIN {
		return 0, badOperation("invalid position '%v' in '%v'", text, operation)
	}
	return position, nil
}

// ParseOperation parses a single operation. Values may contain ':'.
func ParseOperation(text string) (Operation, error) {
	kind, rest, hasOperands := strings.Cut(text, ":")
	switch kind {
	case PUSH_FRONT:
		if !hasOperands {
			return Operation{}, badOperation("missing value in '%v'", text)
		}
		return Operation{Kind: kind, Value: rest}, nil
	case INSERT_AFTER:
		positionText, value, hasValue := strings.Cut(rest, ":")
		if !hasOperands || !hasValue {
			return Operation{}, badOperation("expected %v:<position>:<value>, got '%v'", INSERT_AFTER, text)
		}
		position, err := parsePosition(positionText, text)
		if err != nil {
			return Operation{}, err
		}
		return Operation{Kind: kind, Position: position, Value: value}, nil
	case ERASE_AFTER:
		if !hasOperands {
			return Operation{}, badOperation("expected %v:<position>, got '%v'", ERASE_AFTER, text)
		}
		position, err := parsePosition(rest, text)
		if err != nil {
			return Operation{}, err
		}
		return Operation{Kind: kind, Position: position}, nil
	case POP_FRONT, CLEAR, FILTER:
		if hasOperands {
			return Operation{}, badOperation("'%v' takes no operands, got '%v'", kind, text)
		}
		return Operation{Kind: kind}, nil
	}
	return Operation{}, badOperation("unknown operation '%v'", text)
}

func ParseOperations(texts []string) ([]Operation, error) {
	operations := make([]Operation, 0, len(texts))
	for _, text := range texts {
		operation, err := ParseOperation(strings.TrimSpace(text))
		if err != nil {
			return nil, err
		}
		operations = append(operations, operation)
	}
	return operations, nil
}

// Runner applies operations to string lists. Its patterns are used by the
// filter operation.
type Runner struct {
	includePatterns []glob.Glob
	excludePatterns []glob.Glob
	ignoreCase      bool
	verbose         bool
}

func NewRunner(includePatterns []string, excludePatterns []string, ignoreCase bool, verbose bool) (*Runner, error) {
	runner := &Runner{
		ignoreCase: ignoreCase,
		verbose:    verbose,
	}
	var err error
	runner.includePatterns, err = runner.compileGlobs(includePatterns, "include")
	if err != nil {
		return nil, err
	}
	runner.excludePatterns, err = runner.compileGlobs(excludePatterns, "exclude")
	if err != nil {
		return nil, err
	}
	return runner, nil
}

func (runner *Runner) compileGlobs(patterns []string, title string) ([]glob.Glob, error) {
	runner.verboseLog("%v %v patterns:\n%v", len(patterns), title, strings.Join(patterns, ", "))
	globs := make([]glob.Glob, len(patterns))
	for i, pattern := range patterns {
		if runner.ignoreCase {
			pattern = strings.ToLower(pattern)
		}
		compiled, err := glob.Compile(pattern)
		if err != nil {
			return nil, &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_PATTERN,
				InternalError: fmt.Errorf("failed to compile %v pattern '%v': %v", title, pattern, err),
			}
		}
		globs[i] = compiled
	}
	return globs, nil
}

func (runner *Runner) verboseLog(format string, v ...interface{}) {
	if runner.verbose {
		log.Printf(format, v...)
	}
}

func matches(value string, patterns []glob.Glob) bool {
	for _, pattern := range patterns {
		if pattern.Match(value) {
			return true
		}
	}
	return false
}

// Keep reports whether value survives filtering. A value matching an
// include pattern is kept even if it also matches an exclude pattern.
func (runner *Runner) Keep(value string) bool {
	if runner.ignoreCase {
		value = strings.ToLower(value)
	}
	if len(runner.includePatterns) > 0 {
		return matches(value, runner.includePatterns)
	}
	return !matches(value, runner.excludePatterns)
}

// Filter removes the values rejected by Keep and returns how many were removed.
func (runner *Runner) Filter(values *list.LinkedList[string]) int {
	removed := 0
	prev := values.BeforeBegin()
	for {
		current := prev
		current.Next()
		if current.Equal(values.End()) {
			break
		}
		if runner.Keep(current.Value()) {
			prev = current
			continue
		}
		runner.verboseLog("--- dropping '%v' - rejected by patterns", current.Value())
		values.EraseAfter(prev)
		removed++
	}
	return removed
}

// Apply runs operations in order. Operations are checked against the list
// before they run, so an out of range position is reported as an error and
// the operations before it stay applied.
func (runner *Runner) Apply(values *list.LinkedList[string], operations []Operation) error {
	for i, operation := range operations {
		err := runner.apply(values, operation)
		if err != nil {
			return fmt.Errorf("operation #%v: %w", i+1, err)
		}
		runner.verboseLog("+++ %v - size %v", operation, values.GetSize())
	}
	return nil
}

func (runner *Runner) apply(values *list.LinkedList[string], operation Operation) error {
	switch operation.Kind {
	case PUSH_FRONT:
		values.PushFront(operation.Value)
	case POP_FRONT:
		if values.IsEmpty() {
			return badOperation("'%v' on empty list", operation)
		}
		values.PopFront()
	case INSERT_AFTER:
		if operation.Position >= values.GetSize() {
			return badOperation("'%v' position out of range for size %v", operation, values.GetSize())
		}
		values.InsertAfter(positionAt(values, operation.Position), operation.Value)
	case ERASE_AFTER:
		if operation.Position >= values.GetSize()-1 {
			return badOperation("'%v' has no element to erase for size %v", operation, values.GetSize())
		}
		values.EraseAfter(positionAt(values, operation.Position))
	case CLEAR:
		values.Clear()
	case FILTER:
		removed := runner.Filter(values)
		runner.verboseLog("filter removed %v values", removed)
	default:
		return badOperation("unknown operation '%v'", operation.Kind)
	}
	return nil
}

// positionAt returns the iterator for a validated position operand.
func positionAt(values *list.LinkedList[string], position int) list.ConstIterator[string] {
	it := values.CBeforeBegin()
	for i := BEFORE_BEGIN; i < position; i++ {
		it.Next()
	}
	return it
}
