/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/clsx/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" DEBUG ": slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, logging.ParseLevel(in), in)
	}
}

func TestNew_JSONWithTimestamp(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New("info", &buf)

	log.Debug("hidden")
	require.Zero(t, buf.Len())

	log.Info("class defined", "class", "point")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "class defined", rec["msg"])
	assert.Equal(t, "point", rec["class"])
	assert.Contains(t, rec, logging.TimeKey)
	assert.NotContains(t, rec, slog.TimeKey)
}

func TestDiscard(t *testing.T) {
	log := logging.Discard()
	require.False(t, log.Enabled(t.Context(), slog.LevelError))
}
