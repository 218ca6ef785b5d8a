package drawaria

// Severity tags a progress message. Tags are purely observational and never
// affect control flow.
type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Error   Severity = "error"
)

// Logger receives human-readable progress notifications during a conversion.
type Logger func(message string, severity Severity)

// notify invokes the observer, if one is set. A panicking observer is
// recovered: conversion never aborts on its account.
func (c Config) notify(message string, severity Severity) {
	if c.Progress == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	c.Progress(message, severity)
}
