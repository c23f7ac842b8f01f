package proxy_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gopatterns/proxy"
)

func TestProxy_FirstDisplayLoadsThenDisplays(t *testing.T) {
	var buf bytes.Buffer
	p := proxy.NewImageProxy("test_image.jpg", &buf)

	require.False(t, p.Loaded(), "nothing loads at construction time")

	p.Display()
	want := "Loading image from disk: test_image.jpg\nDisplaying image: test_image.jpg\n"
	assert.Equal(t, want, buf.String())
	assert.True(t, p.Loaded())
}

func TestProxy_LaterDisplaysReuseCachedSubject(t *testing.T) {
	var buf bytes.Buffer
	p := proxy.NewImageProxy("test_image.jpg", &buf)

	p.Display()
	p.Display()
	p.Display()

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "Loading image from disk"),
		"the expensive load happens exactly once")
	assert.Equal(t, 3, strings.Count(out, "Displaying image"))
}

func TestRealImage_EagerLoad(t *testing.T) {
	var buf bytes.Buffer
	img := proxy.NewRealImage("eager.jpg", &buf)

	assert.Equal(t, "Loading image from disk: eager.jpg\n", buf.String(),
		"constructing the subject is what pays the load")

	img.Display()
	assert.Equal(t,
		"Loading image from disk: eager.jpg\nDisplaying image: eager.jpg\n",
		buf.String())
}

func TestProxy_SatisfiesImage(t *testing.T) {
	var buf bytes.Buffer
	var img proxy.Image = proxy.NewImageProxy("i.jpg", &buf)
	img.Display()

	assert.Contains(t, buf.String(), "Displaying image: i.jpg")
}
