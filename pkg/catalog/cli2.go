package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
)

//go:embed cli2.toml
var cli2TOML []byte

// CLI2 returns the built-in declarations of the cli2 library. Each call
// returns a fresh catalog the caller may modify.
func CLI2() *Catalog {
	c, err := Parse(cli2TOML)
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in cli2 declarations: %v", err))
	}
	return c
}

// CLI2Source returns the TOML text CLI2 is parsed from.
func CLI2Source() []byte { return bytes.Clone(cli2TOML) }

// Builtin returns a fresh copy of the named built-in catalog.
func Builtin(name string) (*Catalog, bool) {
	switch name {
	case "cli2", "":
		return CLI2(), true
	}
	return nil, false
}
