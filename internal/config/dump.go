package config

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

var spewConfig *spew.ConfigState

func init() {
	spewConfig = spew.NewDefaultConfig()
	spewConfig.DisableCapacities = true
	spewConfig.DisablePointerAddresses = true
	spewConfig.SortKeys = true
}

// Dump writes the effective configuration in spew's annotated form.
func Dump(w io.Writer, c Config) {
	spewConfig.Fdump(w, c)
}

// Sdump is Dump into a string.
func Sdump(c Config) string {
	return spewConfig.Sdump(c)
}
