package log

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext(t *testing.T) {
	var buf bytes.Buffer
	Configure("debug", "json")
	logrus.SetOutput(&buf)
	defer logrus.SetOutput(os.Stderr)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).WithField("stores", 3).Info("reference loaded")

	assert.Contains(t, buf.String(), `"correlation_id":"`+id+`"`)
	assert.Contains(t, buf.String(), `"stores":3`)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

func TestConfigure_InvalidLevel(t *testing.T) {
	Configure("loud", "text")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "1500ms", Duration(1500*time.Millisecond))
}
