// Package data embeds the default Tagalog stemming resources.
//
// The files are plain text, one entry per line, '#' starts a comment:
//
//	prefixes.txt         prefix patterns, optional "repeat" flag
//	infixes.txt          infix patterns
//	suffixes.txt         suffix patterns
//	circumfixes.txt      head+tail pairs removed atomically
//	contractions.txt     contraction markers with their left context
//	transformations.txt  spelling alternation rules
//	function_words.txt   short function words never returned as roots
//	words.txt            the root dictionary
package data

import "embed"

// FS holds every resource file at its root.
//
//go:embed *.txt
var FS embed.FS
