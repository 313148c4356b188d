package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLogger_DefaultEntry(t *testing.T) {
	entry := Logger(context.Background())
	assert.NotNil(t, entry)
	assert.Empty(t, entry.Data)
}

func TestWithFields_Accumulates(t *testing.T) {
	ctx := WithFields(context.Background(), logrus.Fields{"request_id": "abc"})
	ctx = WithFields(ctx, logrus.Fields{"kind": "company"})

	entry := Logger(ctx)
	assert.Equal(t, "abc", entry.Data["request_id"])
	assert.Equal(t, "company", entry.Data["kind"])
}

func TestInit_Level(t *testing.T) {
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })

	Init(Config{Level: "debug", Format: "text"})
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Init(Config{Level: "not-a-level"})
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
