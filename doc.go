// Package barline renders template driven progress indicators to a terminal.
//
// A Progress tracks one unit of work. A BarItem owns a template string with
// {name} placeholders and resolves them against one or more Progress
// instances on every Render call. A Bar collects items and rewrites the
// terminal in place on a refresh tick.
package barline
