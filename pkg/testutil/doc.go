// Package testutil provides helpers for testing diinject components.
//
// Key components:
//   - IsolateShared: swaps the process-wide container for a fresh one for the
//     duration of a test
//   - CaptureLogger: a zerolog logger whose JSON lines can be inspected
//   - CreateFile: writes fixture files (config files) into a temp directory
//
// Tests must assert on returned values. Captured logs are only used to check
// that a diagnostic was emitted, never to drive control flow.
package testutil
