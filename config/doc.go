// Package config loads the formatter configuration surface: the color
// mode of console output, whether file lines carry the level name and
// the minimum level the slog adapter passes on.
//
// Values come from an optional YAML file and can be overridden with
// environment variables prefixed LOGLINE_, for example LOGLINE_COLOR=off,
// LOGLINE_LEVEL=debug or LOGLINE_FILE_INCLUDE_LEVEL=false.
package config
