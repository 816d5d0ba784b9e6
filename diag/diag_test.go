package diag_test

import (
	"bytes"
	"testing"

	"github.com/WinPooh32/unwraplog/diag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetEmitter(t *testing.T) {
	var got []string

	diag.SetEmitter(diag.EmitterFunc(func(msg string) {
		got = append(got, msg)
	}))
	t.Cleanup(func() { diag.SetEmitter(nil) })

	diag.Warn("first")
	diag.Warn("second")

	assert.Equal(t, []string{"first", "second"}, got)
}

func TestDefaultEmitter(t *testing.T) {
	var buf bytes.Buffer

	old := log.Logger
	log.Logger = zerolog.New(&buf)

	t.Cleanup(func() { log.Logger = old })

	diag.SetEmitter(nil)
	diag.Warn("main.go:42 encountered `None`")

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "encountered `None`")
}
