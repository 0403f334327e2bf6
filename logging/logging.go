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

// Package logging builds the structured JSON logger used by clsx.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level names accepted by New and ParseLevel.
const (
	DEBUG = "DEBUG"
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
)

// TimeKey replaces slog's default "time" attribute key.
const TimeKey = "timestamp"

// ParseLevel maps a level name to a slog.Level, case-insensitively.
// Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case DEBUG:
		return slog.LevelDebug
	case WARN, "WARNING":
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// New creates a JSON logger writing to dest (stderr when nil) at the given
// level.
func New(level string, dest io.Writer) *slog.Logger {
	if dest == nil {
		dest = os.Stderr
	}
	handler := slog.NewJSONHandler(dest, &slog.HandlerOptions{
		Level: ParseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				a.Key = TimeKey
			}
			return a
		},
	})
	return slog.New(handler)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
