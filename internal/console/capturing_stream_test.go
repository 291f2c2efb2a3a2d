package console

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestCapturingStreamPreservesWriteOrder(t *testing.T) {
	stream := NewCapturingStream()

	_, err := stream.WriteString("a")
	require.NoError(t, err)
	_, err = stream.Write([]byte("b"))
	require.NoError(t, err)
	_, err = fmt.Fprint(stream, "c")
	require.NoError(t, err)

	assert.Equal(t, "abc", stream.String())
	assert.Equal(t, 3, stream.Len())
}

func TestCapturingStreamDecodesWithExplicitEncoding(t *testing.T) {
	stream := NewCapturingStream()
	_, err := stream.Write([]byte{'c', 'a', 'f', 0xe9})
	require.NoError(t, err)

	latin1, err := stream.Contents(charmap.ISO8859_1)
	require.NoError(t, err)
	assert.Equal(t, "café", latin1)

	utf8, err := stream.Contents(unicode.UTF8)
	require.NoError(t, err)
	assert.Equal(t, "caf�", utf8)
}

func TestCapturingStreamBytesIsSnapshot(t *testing.T) {
	stream := NewCapturingStream()
	_, _ = stream.WriteString("first")

	snapshot := stream.Bytes()
	_, _ = stream.WriteString(" second")

	assert.Equal(t, "first", string(snapshot))
	assert.Equal(t, "first second", stream.String())
}

func TestCapturingStreamStringKeepsInvalidUTF8(t *testing.T) {
	stream := NewCapturingStream()
	_, err := stream.Write([]byte("Caf\xe9.java:1: error\n"))
	require.NoError(t, err)

	assert.Equal(t, "Caf\xe9.java:1: error\n", stream.String())
	assert.Equal(t, []byte("Caf\xe9.java:1: error\n"), stream.Bytes())
}

func TestCapturingStreamConcurrentWritersKeepWholeWrites(t *testing.T) {
	stream := NewCapturingStream()
	const writers = 8
	const perWriter = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				_, _ = stream.WriteString(fmt.Sprintf("[w%d]", id))
			}
		}(i)
	}
	wg.Wait()

	text := stream.String()
	for i := 0; i < writers; i++ {
		assert.Equal(t, perWriter, strings.Count(text, fmt.Sprintf("[w%d]", i)))
	}
}
