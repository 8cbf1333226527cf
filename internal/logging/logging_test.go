package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewWritesToOutput(t *testing.T) {
	var buf bytes.Buffer

	l := New(&buf)
	l.Info("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), "time=")
}

func TestLevelFollowsDebugSwitch(t *testing.T) {
	l := New(&bytes.Buffer{})

	if Debug() {
		assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	} else {
		assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	}
}

func TestForTagsComponent(t *testing.T) {
	e := For("render")
	assert.Equal(t, "render", e.Data["component"])
	assert.Same(t, Get(), e.Logger)
}
