package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	xorpackVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	xorpack := NewAppBuild("xorpack", "cmd/xorpack", xorpackVersion)
	xorpack.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", xorpackVersion).
			CgoEnabled(false)
	})
	xorpack.Variant("windows", "amd64")
	xorpack.Variant("linux", "amd64")
	xorpack.Variant("linux", "arm64")
	xorpack.Variant("darwin", "amd64")
	xorpack.Variant("darwin", "arm64")
	b.ImportApp(xorpack)

	b.Execute()
}
