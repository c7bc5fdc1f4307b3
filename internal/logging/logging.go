// Package logging centralizes the editor's diagnostic output behind
// log4go, the same logging library the rest of this codebase's lineage
// uses for its watcher and plugin-host components.
package logging

import (
	"github.com/limetext/log4go"
)

// SetLogFile redirects output to path, without rotation, and removes the
// default console writer so a full-screen terminal UI doesn't get its
// frame clobbered by log lines. Call once during startup.
func SetLogFile(path string) error {
	log4go.Global = make(log4go.Logger)
	flw := log4go.NewFileLogWriter(path, false)
	if flw == nil {
		return errLogFileFailed(path)
	}
	flw.SetFormat("[%D %T] [%L] %M")
	log4go.Global.AddFilter("file", log4go.FINE, flw)
	return nil
}

type errLogFileFailed string

func (e errLogFileFailed) Error() string { return "logging: could not open log file " + string(e) }

func Finest(format string, args ...interface{})   { log4go.Finest(format, args...) }
func Fine(format string, args ...interface{})     { log4go.Fine(format, args...) }
func Debug(format string, args ...interface{})    { log4go.Debug(format, args...) }
func Info(format string, args ...interface{})     { log4go.Info(format, args...) }
func Warn(format string, args ...interface{})     { log4go.Warn(format, args...) }
func Error(format string, args ...interface{})    { log4go.Error(format, args...) }
func Critical(format string, args ...interface{}) { log4go.Critical(format, args...) }

// Errorf logs at error level and returns the formatted message as an
// error, matching the call-site idiom used where a failure must both be
// logged and propagated to the caller.
func Errorf(format string, args ...interface{}) error {
	return log4go.Error(format, args...)
}
