package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/scottcagno/bstmap/pkg/bst"
)

// absent is printed on its own for a missing key; hits are prefixed
const absent = "absent"

// KeyParser turns a script token into a map key
type KeyParser[K any] func(s string) (K, error)

func parseString(s string) (string, error) {
	return s, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrBadKey, s)
	}
	return n, nil
}

// Interpreter runs line oriented map commands against an OrderedMap and
// writes one line of output per command.
type Interpreter[K any] struct {
	m     *bst.OrderedMap[K, string]
	parse KeyParser[K]
	out   io.Writer
	log   *slog.Logger
}

func NewInterpreter[K any](m *bst.OrderedMap[K, string], parse KeyParser[K], out io.Writer, logger *slog.Logger) *Interpreter[K] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Interpreter[K]{
		m:     m,
		parse: parse,
		out:   out,
		log:   logger,
	}
}

// Run executes every command read from r. It stops at the first failing
// line and reports its line number.
func (in *Interpreter[K]) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := in.Exec(line); err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	return sc.Err()
}

// Exec runs a single command
func (in *Interpreter[K]) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	in.log.Debug("exec", "cmd", name, "args", args, "size", in.m.Size())

	switch name {
	case "put":
		if len(args) < 2 {
			return arity(name, args)
		}
		key, err := in.parse(args[0])
		if err != nil {
			return err
		}
		prev, ok := in.m.Put(key, strings.Join(args[1:], " "))
		if ok {
			return in.println("replaced", prev)
		}
		return in.println("inserted")
	case "get", "del", "has":
		if len(args) != 1 {
			return arity(name, args)
		}
		key, err := in.parse(args[0])
		if err != nil {
			return err
		}
		return in.keyed(name, key)
	case "hasval":
		if len(args) < 1 {
			return arity(name, args)
		}
		return in.println(in.m.ContainsValue(strings.Join(args, " ")))
	case "keys", "values", "size", "empty", "print", "clear":
		if len(args) != 0 {
			return arity(name, args)
		}
		return in.whole(name)
	}
	return fmt.Errorf("%w %q", ErrUnknownCommand, name)
}

// keyed runs the commands that take a single key
func (in *Interpreter[K]) keyed(name string, key K) error {
	switch name {
	case "get":
		if v, ok := in.m.Get(key); ok {
			return in.println("value", v)
		}
	case "del":
		if v, ok := in.m.Remove(key); ok {
			return in.println("removed", v)
		}
	case "has":
		return in.println(in.m.ContainsKey(key))
	}
	return in.println(absent)
}

// whole runs the commands that look at the entire map
func (in *Interpreter[K]) whole(name string) error {
	switch name {
	case "keys":
		return in.println(in.m.Keys())
	case "values":
		return in.println(in.m.Values())
	case "size":
		return in.println(in.m.Size())
	case "empty":
		return in.println(in.m.IsEmpty())
	case "print":
		return in.println(in.m.String())
	}
	in.m.Clear()
	return in.println("cleared")
}

func (in *Interpreter[K]) println(a ...any) error {
	_, err := fmt.Fprintln(in.out, a...)
	return err
}

func arity(name string, args []string) error {
	return fmt.Errorf("%w: %s got %d", ErrBadArity, name, len(args))
}
