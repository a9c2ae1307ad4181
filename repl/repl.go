// Package repl interprets text commands against a SortedList of integers.
// It backs the sortedlist-repl binary and can be driven without a terminal.
package repl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/amp-labs/sortedlist/hashing"
	"github.com/amp-labs/sortedlist/logger"
	"github.com/amp-labs/sortedlist/sortable"
	"github.com/amp-labs/sortedlist/sortedlist"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownHash     = errors.New("unknown hash function")
)

// Prompter is the interactive input a Session needs.
type Prompter interface {
	Line(label string) (string, error)
	Confirm(label string) (bool, error)
	Select(label string, choices []string) (string, error)
}

// hashFuncs maps digest names to implementations; hashNames fixes their display order.
var (
	hashFuncs = map[string]hashing.HashFunc{ //nolint:gochecknoglobals
		"sha256":   hashing.Sha256,
		"xxh3":     hashing.Xxh3,
		"xxhash64": hashing.XXHash64,
	}
	hashNames = []string{"sha256", "xxh3", "xxhash64"} //nolint:gochecknoglobals
)

// Session holds the list being edited and where results are written.
type Session struct {
	id     string
	list   *sortedlist.SortedList[sortable.Int]
	out    io.Writer
	log    *slog.Logger
	prompt Prompter
}

// NewSession creates a session with an empty list. Its logger is taken from ctx
// and tagged with a fresh session id.
func NewSession(ctx context.Context, out io.Writer, prompt Prompter) *Session {
	id := uuid.NewString()

	return &Session{
		id:     id,
		list:   sortedlist.New[sortable.Int](),
		out:    out,
		log:    logger.Get(ctx).With("session", id),
		prompt: prompt,
	}
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// List returns the list the session operates on.
func (s *Session) List() *sortedlist.SortedList[sortable.Int] {
	return s.list
}

// Run reads commands from the prompter until quit or end of input.
// Command failures are reported and the loop continues.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.prompt.Line("sortedlist")
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		more, err := s.Execute(line)
		if err != nil {
			s.log.Warn("command failed", "line", line, "error", err)
			s.printf("error: %v\n", err)
		}

		if !more {
			return nil
		}
	}
}

// Execute runs one command line. It returns false when the session should end.
func (s *Session) Execute(line string) (bool, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true, nil
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	s.log.Debug("executing command", "command", cmd, "args", args)

	var err error

	switch cmd {
	case "help":
		s.printHelp()
	case "quit", "exit":
		return false, nil
	case "add":
		err = s.cmdAdd(args)
	case "remove", "rm":
		err = s.withValue(args, func(v sortable.Int) {
			if s.list.Remove(v) {
				s.printf("removed %d, count %d\n", v, s.list.Count())
			} else {
				s.printf("%d not found\n", v)
			}
		})
	case "indexof":
		err = s.withValue(args, func(v sortable.Int) {
			s.printf("%d\n", s.list.IndexOf(v))
		})
	case "contains":
		err = s.withValue(args, func(v sortable.Int) {
			s.printf("%t\n", s.list.Contains(v))
		})
	case "at":
		err = s.cmdAt(args)
	case "count":
		s.printf("%d\n", s.list.Count())
	case "list":
		s.printf("%s\n", s.format())
	case "first":
		s.printOptional(s.list.First().Get())
	case "last":
		s.printOptional(s.list.Last().Get())
	case "digest":
		err = s.cmdDigest(args)
	case "json":
		err = s.cmdJSON()
	case "yaml":
		err = s.cmdYAML()
	case "load":
		err = s.cmdLoad(args)
	case "validate":
		err = s.list.Validate()
		if err == nil {
			s.printf("ok\n")
		}
	case "clear":
		err = s.cmdClear()
	default:
		err = fmt.Errorf("%w: %q (try 'help')", ErrUnknownCommand, cmd)
	}

	return true, err
}

func (s *Session) cmdAdd(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: add needs at least one value", ErrMissingArgument)
	}

	values := make([]sortable.Int, 0, len(args))

	for _, arg := range args {
		v, err := parseInt(arg)
		if err != nil {
			return err
		}

		values = append(values, v)
	}

	s.list.AddAll(values...)
	s.printf("added %d, count %d\n", len(values), s.list.Count())

	return nil
}

func (s *Session) cmdAt(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: at needs an index", ErrMissingArgument)
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q is not an index", ErrInvalidArgument, args[0])
	}

	v, err := s.list.At(index)
	if err != nil {
		return err
	}

	s.printf("%d\n", v)

	return nil
}

func (s *Session) cmdDigest(args []string) error {
	var name string

	switch len(args) {
	case 0:
		choice, err := s.prompt.Select("Hash function", hashNames)
		if err != nil {
			return err
		}

		name = choice
	case 1:
		name = strings.ToLower(args[0])
	default:
		return fmt.Errorf("%w: digest takes at most one hash name", ErrInvalidArgument)
	}

	fn, ok := hashFuncs[name]
	if !ok {
		return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownHash, name, strings.Join(hashNames, ", "))
	}

	sum, err := sortedlist.Digest(s.list, fn)
	if err != nil {
		return err
	}

	s.printf("%s %s\n", name, sum)

	return nil
}

func (s *Session) cmdJSON() error {
	data, err := json.Marshal(s.list)
	if err != nil {
		return err
	}

	s.printf("%s\n", data)

	return nil
}

func (s *Session) cmdYAML() error {
	data, err := yaml.Marshal(s.list)
	if err != nil {
		return err
	}

	s.printf("%s", data)

	return nil
}

func (s *Session) cmdLoad(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: load needs a file path", ErrMissingArgument)
	}

	added, err := s.Load(args[0])
	if err != nil {
		return err
	}

	s.printf("loaded %d, count %d\n", added, s.list.Count())

	return nil
}

func (s *Session) cmdClear() error {
	if s.list.Count() == 0 {
		return nil
	}

	ok, err := s.prompt.Confirm(fmt.Sprintf("Remove all %d elements", s.list.Count()))
	if err != nil {
		return err
	}

	if ok {
		s.list.Clear()
		s.printf("cleared\n")
	}

	return nil
}

// Load adds the values of a JSON (.json) or YAML (anything else) array file
// to the list and returns how many were added.
func (s *Session) Load(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	loaded := sortedlist.New[sortable.Int]()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, loaded)
	} else {
		err = yaml.Unmarshal(data, loaded)
	}

	if err != nil {
		return 0, fmt.Errorf("loading %s: %w", path, err)
	}

	s.list.AddAll(loaded.Entries()...)
	s.log.Info("loaded values", "path", path, "count", loaded.Count())

	return loaded.Count(), nil
}

func (s *Session) withValue(args []string, f func(sortable.Int)) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected one value", ErrMissingArgument)
	}

	v, err := parseInt(args[0])
	if err != nil {
		return err
	}

	f(v)

	return nil
}

func parseInt(arg string) (sortable.Int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidArgument, arg)
	}

	return sortable.Int(v), nil
}

func (s *Session) format() string {
	var sb strings.Builder

	sb.WriteByte('[')

	first := true

	for v := range s.list.All() {
		if !first {
			sb.WriteByte(' ')
		}

		sb.WriteString(strconv.Itoa(int(v)))

		first = false
	}

	sb.WriteByte(']')

	return sb.String()
}

func (s *Session) printOptional(v sortable.Int, ok bool) {
	if ok {
		s.printf("%d\n", v)
	} else {
		s.printf("(empty)\n")
	}
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Session) printHelp() {
	s.printf(`Commands:
  add <n>...            add one or more integers
  remove <n>            remove one occurrence of n
  indexof <n>           smallest index holding n, or -1
  contains <n>          whether n is present
  at <i>                element at index i
  count                 number of elements
  list                  all elements in ascending order
  first | last          smallest or largest element
  digest [name]         hash of the contents (sha256, xxh3, xxhash64)
  json | yaml           print the contents encoded
  load <file>           add the values of a JSON or YAML array file
  validate              check the tree invariants
  clear                 remove everything (asks first)
  help                  this text
  quit                  leave
`)
}
