package stderr

import (
	"github.com/rs/zerolog"
)

// Messages receives stderr lines captured from C libraries.
var Messages = make(chan string, 100)

// Forward logs captured lines at warn level until Messages is closed.
// It blocks; run it in its own goroutine.
func Forward(logger zerolog.Logger) {
	for line := range Messages {
		logger.Warn().Str("source", "stderr").Msg(line)
	}
}
