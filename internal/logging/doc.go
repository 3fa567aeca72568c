// Package logging wires log/slog to a rotating log file.
package logging
