// Package diag routes unwrap diagnostics to a process-wide leveled sink.
//
// The package does not implement logging itself: the configured [Emitter]
// owns filtering, formatting and output destinations. By default records go
// to zerolog's global logger.
package diag

import (
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

// Emitter accepts a single warn-level diagnostic record. The message already
// embeds the call-site prefix and the encountered-value description.
//
// Implementations must be safe for concurrent use.
type Emitter interface {
	Warn(msg string)
}

// EmitterFunc adapts a plain function to the [Emitter] interface.
type EmitterFunc func(msg string)

func (f EmitterFunc) Warn(msg string) {
	f(msg)
}

var emitter atomic.Pointer[Emitter]

// SetEmitter replaces the process-wide diagnostic sink. Passing nil restores
// the default zerolog-backed sink. Safe to call concurrently with emissions.
func SetEmitter(e Emitter) {
	if e == nil {
		emitter.Store(nil)
		return
	}

	emitter.Store(&e)
}

// Warn forwards one diagnostic record to the current sink. Each record is
// passed through exactly once, without buffering.
func Warn(msg string) {
	if e := emitter.Load(); e != nil {
		(*e).Warn(msg)
		return
	}

	log.Warn().Msg(msg)
}
