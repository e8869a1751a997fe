package ui

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterUIOutput(t *testing.T) {
	out := &bytes.Buffer{}
	u := NewWriterUI(out, strings.NewReader(""))

	u.Info("hello %s", "world")
	u.Indent().Warn("careful")
	u.KeyValue([][2]string{{"Chain", "1"}, {"Address", "0xabc"}})

	assert.Equal(t, "hello world\n  careful\nChain    1\nAddress  0xabc\n", out.String())
}

func TestWriterUITable(t *testing.T) {
	out := &bytes.Buffer{}
	u := NewWriterUI(out, strings.NewReader(""))
	u.Table([]string{"role", "address"}, [][]string{{"weth", "0x42"}})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.Contains(t, lines[1], "role")
	assert.Contains(t, lines[3], "weth")
	assert.Contains(t, lines[3], "0x42")
}

func TestWriterUIConfirm(t *testing.T) {
	out := &bytes.Buffer{}
	u := NewWriterUI(out, strings.NewReader("maybe\ny\n"))
	assert.True(t, u.Confirm("send?", false))
	assert.Contains(t, out.String(), "please enter y or n")
}

func TestIndentedWriter(t *testing.T) {
	out := &bytes.Buffer{}
	u := NewWriterUI(out, strings.NewReader(""))
	fmt.Fprint(u.Indent().Writer(), "a\nb\n")
	assert.Equal(t, "  a\n  b\n", out.String())
}

func TestRecordingUI(t *testing.T) {
	r := NewRecordingUI("", "secret")
	r.Info("one")
	r.Indent().Error("two")
	r.Table(nil, [][]string{{"x", "y"}})
	assert.True(t, r.Confirm("ok?", true))
	assert.Equal(t, "secret", r.Password("password"))

	assert.Equal(t, []string{"two"}, r.Messages("Error"))
	assert.Equal(t, []string{"x | y"}, r.Messages("Table"))
	assert.True(t, r.HasMessage("ONE"))
	assert.Panics(t, func() { r.Ask(nil) })
}
