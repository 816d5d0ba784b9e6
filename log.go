package unwraplog

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/WinPooh32/unwraplog/diag"
)

// Diagnostics are formatted as "<file>:<line> encountered `...`" where the
// position is the call site of the unwrap method itself. The skip distances
// below rely on warnNone and warnErr being called directly by the exported
// methods, never through another helper.

func warnNone() {
	diag.Warn(callerPos(2) + " encountered `None`")
}

func warnErr(err error) {
	diag.Warn(fmt.Sprintf("%s encountered `Err(%q)`", callerPos(2), err))
}

// callerPos formats the source position skip frames above the caller of
// callerPos.
func callerPos(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown position"
	}

	return file + ":" + strconv.Itoa(line)
}
