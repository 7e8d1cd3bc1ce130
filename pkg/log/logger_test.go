package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer func() {
		SetSink(os.Stderr)
		SetLevel(Notice)
	}()

	logger := New("test")

	SetLevel(Warning)
	logger.Infof("hidden %d", 1)
	logger.Warningf("shown %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "[test]")
}

func TestToLoggingLevelOrdering(t *testing.T) {
	// go-logging orders levels from most to least severe
	levels := []Level{Debug, Info, Notice, Warning, Error}
	for i := 1; i < len(levels); i++ {
		assert.Less(t, int(toLoggingLevel(levels[i])), int(toLoggingLevel(levels[i-1])))
	}
}

func TestDebugLevelShowsEverything(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer func() {
		SetSink(os.Stderr)
		SetLevel(Notice)
	}()

	logger := New("bvh")

	logger.Debugf("before %s", "debug level")
	SetLevel(Debug)
	logger.Debugf("nodes: %d", 9)
	logger.Noticef("rendering")
	logger.Errorf("failed: %v", "boom")

	out := buf.String()
	assert.NotContains(t, out, "before debug level")
	for _, expected := range []string{"nodes: 9", "rendering", "failed: boom", "[bvh]"} {
		assert.Contains(t, out, expected)
	}
}
