package lifecycle

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShaderReloadIsConsumedOnce(t *testing.T) {
	var l Lifecycle
	assert.False(t, l.TakeShaderReload())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.RequestShaderReload()
		}()
	}
	wg.Wait()

	assert.True(t, l.TakeShaderReload())
	assert.False(t, l.TakeShaderReload())
}

func TestShutdown(t *testing.T) {
	var l Lifecycle
	assert.False(t, l.ShutdownRequested())
	l.RequestShutdown()
	assert.True(t, l.ShutdownRequested())
	assert.True(t, l.ShutdownRequested(), "shutdown stays requested")
}
