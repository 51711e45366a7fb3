// Package logger builds configured slog.Logger instances for CLI programs.
// The defaults favor interactive use: human-readable text on stderr at info
// level, leaving stdout for command output. JSON format and static attributes
// are available through options for runs whose logs are collected.
package logger
