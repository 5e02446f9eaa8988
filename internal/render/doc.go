// Package render turns resolver candidates into launcher items and writes
// them in one of the supported output formats.
//
// Titles and subtitles describe the option, the key when there is one, and
// the stored value before and after the pending change. An absent value is
// shown as <unset>.
package render
