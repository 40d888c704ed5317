package scaffold

import "embed"

//go:embed templates
var scaffoldFS embed.FS
