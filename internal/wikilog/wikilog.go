// Package wikilog is a small trace logger for the tokenizer package. It
// wraps github.com/go-kit/kit/log the way dbc60-go-rst/pkg/log wraps it:
// a named context, optional go-spew dumps of internal state, silent when
// no underlying logger is configured.
package wikilog

import (
	"github.com/davecgh/go-spew/spew"
	klog "github.com/go-kit/kit/log"
)

var spd = spew.ConfigState{Indent: "\t", MaxDepth: 0}

// Logger traces route-stack pushes, pops, and failures. A zero Logger (no
// underlying klog.Logger) discards everything, so tracing is opt-in.
type Logger struct {
	name string
	log  klog.Logger
}

// New wraps log with a named context. A nil log produces a Logger that
// discards every call.
func New(name string, log klog.Logger) Logger {
	return Logger{name: name, log: log}
}

func (l Logger) enabled() bool { return l.log != nil }

// Msgr logs a message with additional key/value fields.
func (l Logger) Msgr(message string, keyvals ...interface{}) {
	if !l.enabled() {
		return
	}
	logr := klog.WithPrefix(l.log, "name", l.name, "msg", message)
	_ = logr.Log(keyvals...)
}

// Dump pretty-prints v as a field on a "dump" message, for inspecting a
// frame or token list when a route fails.
func (l Logger) Dump(message string, v interface{}) {
	if !l.enabled() {
		return
	}
	l.Msgr(message, "obj", spd.Sdump(v))
}
