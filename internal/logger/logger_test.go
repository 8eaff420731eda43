package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cases := []struct {
		name      string
		ginMode   string
		logLevel  string
		wantLevel logrus.Level
		wantJSON  bool
	}{
		{name: "release", ginMode: "release", wantLevel: logrus.InfoLevel, wantJSON: true},
		{name: "debug", ginMode: "debug", wantLevel: logrus.DebugLevel},
		{name: "level override", ginMode: "release", logLevel: "warn", wantLevel: logrus.WarnLevel, wantJSON: true},
		{name: "unknown level is ignored", ginMode: "release", logLevel: "loud", wantLevel: logrus.InfoLevel, wantJSON: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("GIN_MODE", tc.ginMode)
			t.Setenv("LOG_LEVEL", tc.logLevel)

			l := New(new(bytes.Buffer))
			assert.Equal(t, tc.wantLevel, l.GetLevel())
			_, isJSON := l.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tc.wantJSON, isJSON)
		})
	}
}

func TestModule(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("LOG_LEVEL", "")

	var buf bytes.Buffer
	Module(New(&buf), "sms").Info("sent")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "sms", line["module"])
	assert.Equal(t, "sent", line["msg"])
}
