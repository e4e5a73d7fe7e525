// Package textutil provides string helpers: extracting the first capture of a
// delimited Perl-style regular expression, and writing content to a uniquely
// named temporary file.
package textutil
