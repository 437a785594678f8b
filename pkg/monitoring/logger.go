package monitoring

import "log"

// Logf is used for every diagnostic message the game prints. It defaults to
// log.Printf; frontends that own the terminal swap it out with SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces Logf. A nil logger discards messages.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
