// Package store reads and rewrites the KEY=VALUE environment file that holds
// option values.
//
// The file is modeled line by line. Comments, blank lines, export prefixes
// and keys dotconf knows nothing about are written back exactly as read;
// only the assignment lines of a changed key are touched.
//
// When the primary file does not exist, changes are staged in a pending file
// next to it (".env.new" for ".env"). Promoting the pending file is left to
// the user.
package store
