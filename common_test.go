// Copyright The Notary Project Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package oid

import (
	"fmt"
	"sync"
	"testing"

	"github.com/notaryproject/notation-oid-go/log"
	"github.com/stretchr/testify/require"
)

// recordingLogger keeps formatted debug and warn messages.
type recordingLogger struct {
	log.Logger

	mu    sync.Mutex
	debug []string
	warn  []string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{Logger: log.Discard}
}

func (l *recordingLogger) Debugf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = append(l.debug, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warnf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warn = append(l.warn, fmt.Sprintf(format, args...))
}

// mustEncode returns the content octets of a dotted decimal OID.
func mustEncode(t *testing.T, dotted string) Buffer {
	t.Helper()
	b, err := Encode(dotted)
	require.NoError(t, err)
	return b
}
