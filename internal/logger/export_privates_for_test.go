// SPDX-License-Identifier: MIT

package logger

import "os"

// CurrentFile exposes the open log file to logger_test.
func CurrentFile() *os.File {
	mu.RLock()
	defer mu.RUnlock()

	return logFile
}
