package singleton_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gopatterns/singleton"
)

// safeBuffer serializes writes so concurrent construction narration can be
// captured without racing on the buffer itself.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func TestLazy_SameReferenceEveryCall(t *testing.T) {
	var buf safeBuffer
	slot := singleton.NewLazy(&buf)

	first := slot.Instance()
	for i := 0; i < 10; i++ {
		assert.Same(t, first, slot.Instance())
	}
	assert.Equal(t, "Singleton instance created.\n", buf.String(),
		"construction narrates exactly once")
}

func TestLazy_DisplayMessage(t *testing.T) {
	var buf safeBuffer
	inst := singleton.NewLazy(&buf).Instance()
	inst.DisplayMessage()

	want := "Singleton instance created.\nThis is the Singleton instance.\n"
	assert.Equal(t, want, buf.String())
}

func TestMutexLazy_DisplayMessage(t *testing.T) {
	var buf safeBuffer
	inst := singleton.NewMutexLazy(&buf).Instance()
	inst.DisplayMessage()

	want := "Thread-safe Singleton instance created.\nThis is the thread-safe Singleton instance.\n"
	assert.Equal(t, want, buf.String())
}

func TestLazy_ConcurrentFirstAccess_ConstructsOnce(t *testing.T) {
	var buf safeBuffer
	slot := singleton.NewLazy(&buf)

	const callers = 32
	got := make([]*singleton.Instance, callers)

	var g errgroup.Group
	for i := 0; i < callers; i++ {
		g.Go(func() error {
			got[i] = slot.Instance()

			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := 1; i < callers; i++ {
		assert.Same(t, got[0], got[i], "caller %d observed a different instance", i)
	}
	assert.Equal(t, 1, strings.Count(buf.String(), "created"),
		"exactly one construction under contention")
}

func TestMutexLazy_ConcurrentFirstAccess_ConstructsOnce(t *testing.T) {
	var buf safeBuffer
	slot := singleton.NewMutexLazy(&buf)

	const callers = 32
	got := make([]*singleton.Instance, callers)

	var g errgroup.Group
	for i := 0; i < callers; i++ {
		g.Go(func() error {
			got[i] = slot.Instance()

			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := 1; i < callers; i++ {
		assert.Same(t, got[0], got[i], "caller %d observed a different instance", i)
	}
	assert.Equal(t, 1, strings.Count(buf.String(), "created"),
		"exactly one construction under contention")
}

func TestDefault_IdentityStable(t *testing.T) {
	assert.Same(t, singleton.Default(), singleton.Default())
}
