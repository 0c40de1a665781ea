// Materialise - A Material You colour scheme generator
//
// Materialise derives Material Design 3 colour schemes from wallpaper
// images or literal seed colours.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/materialise/internal/cli"
)

func main() {
	cli.Execute()
}
