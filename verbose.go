package logimage

import (
	"fmt"
	"os"
	"sync/atomic"
)

// verboseLevel is the single process-wide diagnostic flag shared by the
// LogImage, DPX and Cineon layers (spec §5). Setting it is not thread-safe
// with respect to concurrent readers of it mid-call, matching the source
// library's own global.
var verboseLevel int32

// SetVerbose sets the process-wide verbosity level. 0 disables diagnostics.
func SetVerbose(level int) {
	atomic.StoreInt32(&verboseLevel, int32(level))
}

// Verbose returns the current process-wide verbosity level.
func Verbose() int {
	return int(atomic.LoadInt32(&verboseLevel))
}

// debugf writes a diagnostic line to stderr when the verbosity level is at
// least min. It never affects control flow or error handling.
func debugf(min int, format string, args ...interface{}) {
	if Verbose() < min {
		return
	}
	fmt.Fprintf(os.Stderr, "logimage: "+format+"\n", args...)
}
