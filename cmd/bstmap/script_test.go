package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottcagno/bstmap/pkg/bst"
)

func newIntInterpreter(out *bytes.Buffer) *Interpreter[int] {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return NewInterpreter(bst.NewOrdered[int, string](), parseInt, out, logger)
}

func TestInterpreter_Run(t *testing.T) {
	script := `
# the seeded map
put 1 first
put 99 last
put 4 fourth
put 2 second
put 3 third
size
keys
values
print
put 1 not first
get 1
get 999
has 4
hasval last
hasval none
del 1
del 1
size
empty
clear
print
empty
`
	want := []string{
		"inserted",
		"inserted",
		"inserted",
		"inserted",
		"inserted",
		"5",
		"[1 2 3 4 99]",
		"[first second third fourth last]",
		"[  {key=1;value=first}  {key=2;value=second}  {key=3;value=third}  {key=4;value=fourth}  {key=99;value=last} ]",
		"replaced first",
		"value not first",
		absent,
		"true",
		"true",
		"false",
		"removed not first",
		absent,
		"4",
		"false",
		"cleared",
		"[ ]",
		"true",
	}

	var out bytes.Buffer
	require.NoError(t, newIntInterpreter(&out).Run(strings.NewReader(script)))
	assert.Equal(t, strings.Join(want, "\n")+"\n", out.String())
}

func TestInterpreter_StringKeys(t *testing.T) {
	var out bytes.Buffer
	in := NewInterpreter(bst.NewOrdered[string, string](), parseString, &out, nil)
	require.NoError(t, in.Run(strings.NewReader("put b 2\nput a 1\nput c 3\nput 10 x\nkeys\n")))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, "[10 a b c]", lines[len(lines)-1])
}

func TestInterpreter_AbsentValueIsNotAMiss(t *testing.T) {
	var out bytes.Buffer
	in := newIntInterpreter(&out)
	require.NoError(t, in.Run(strings.NewReader("put 1 absent\nget 1\nget 2\ndel 1\ndel 1\n")))
	assert.Equal(t, "inserted\nvalue absent\nabsent\nremoved absent\nabsent\n", out.String())
}

func TestInterpreter_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		err  error
	}{
		{"unknown", "frob 1", ErrUnknownCommand},
		{"put missing value", "put 1", ErrBadArity},
		{"get too many", "get 1 2", ErrBadArity},
		{"keys with args", "keys 1", ErrBadArity},
		{"hasval missing", "hasval", ErrBadArity},
		{"bad key", "get one", ErrBadKey},
		{"bad put key", "put one 1", ErrBadKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := newIntInterpreter(&out).Exec(tt.line)
			assert.ErrorIs(t, err, tt.err)
			assert.Empty(t, out.String())
		})
	}
}

func TestInterpreter_RunReportsLine(t *testing.T) {
	var out bytes.Buffer
	in := newIntInterpreter(&out)
	err := in.Run(strings.NewReader("put 1 a\n\n# comment\nbogus\nput 2 b\n"))
	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "line 4")
	assert.Equal(t, "inserted\n", out.String())
	assert.Equal(t, 1, in.m.Size())
}
