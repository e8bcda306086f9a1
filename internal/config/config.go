// Package config loads simulation settings and player rosters from HCL
// files, so recurring matchups don't have to be retyped as flags.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// File is the root of a flip7 HCL config file:
//
//	games         = 1000
//	winning_score = 200
//
//	player "Alice" { strategy = "flip7=45" }
//	player "Pat"   { strategy = "perfect" }
type File struct {
	Games        int      `hcl:"games,optional"`
	WinningScore int      `hcl:"winning_score,optional"`
	Seed         int64    `hcl:"seed,optional"`
	Players      []Player `hcl:"player,block"`
}

// Player declares one seat: a name label and a strategy spec string
type Player struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
}

// Load parses an HCL config file
func Load(filename string) (*File, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("config file %s: %w", filename, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %s", filename, diags.Error())
	}

	var cfg File
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %s", filename, diags.Error())
	}
	return &cfg, nil
}
