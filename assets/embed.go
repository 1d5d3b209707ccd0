// Package assets embeds the default word lists so the solver can run
// without any files on disk (--builtin).
package assets

import "embed"

const (
	LegalFile     = "legal_wotd.txt"
	GuessableFile = "guessable.txt"
)

//go:embed legal_wotd.txt guessable.txt
var FS embed.FS
