package stderr

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestForward(t *testing.T) {
	saved := Messages
	Messages = make(chan string, 2)
	t.Cleanup(func() { Messages = saved })

	var buf bytes.Buffer
	Messages <- "faad2: bad frame"
	close(Messages)

	Forward(zerolog.New(&buf))

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"message":"faad2: bad frame"`)
	assert.Contains(t, buf.String(), `"source":"stderr"`)
}
