// Package engine resolves partially typed configuration commands and
// computes the mutations they describe.
//
// A command grows one token at a time:
//
//	(nothing)                      every declared option
//	APP_ENV                        set, unset
//	FEATURES                       set, remove, unset
//	FEATURES set                   one candidate per existing key
//	FEATURES set beta on           the final, executable candidate
//
// [Resolve] turns a [Command] plus a store [Snapshot] into candidates. The
// single Valid candidate of a complete command carries an [Operation], and
// [Apply] computes the value to persist. Both are pure; reading and writing
// the store happens in the caller.
package engine
