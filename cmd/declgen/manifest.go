package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"declgen/canon"
	"declgen/internal/match"
	"declgen/options"
	"declgen/utils"
)

var errNoEnums = errors.New("manifest declares no enums")

// manifest mirrors the declgen.toml layout:
//
//	[package]
//	name = "calendar"
//
//	[[enum]]
//	type = "Weekday"
//	values = ["Monday", "Tuesday"]        # or "Symbol:display name"
//	artifacts = ["consts", "names", "stringer"]   # optional, default all
type manifest struct {
	Package packageConfig `toml:"package"`
	Enums   []enumConfig  `toml:"enum"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type enumConfig struct {
	Type      string   `toml:"type"`
	Values    []string `toml:"values"`
	Artifacts []string `toml:"artifacts"`
}

func loadManifest(path string) (manifest, error) {
	var m manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return manifest{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if !meta.IsDefined("package", "name") {
		return manifest{}, fmt.Errorf("%s: missing package.name", path)
	}

	if len(m.Enums) == 0 {
		return manifest{}, fmt.Errorf("%s: %w", path, errNoEnums)
	}

	return m, nil
}

// records expands the value shorthand: "Symbol" or "Symbol:display name".
func (e enumConfig) records() []canon.Record {
	records := make([]canon.Record, 0, len(e.Values))
	for _, raw := range e.Values {
		symbol, display := utils.Unpack2(strings.SplitN(raw, ":", 2))
		records = append(records, canon.Record{Symbol: symbol, Display: display})
	}

	return records
}

func (e enumConfig) artifactSet() (options.ArtifactEnum, error) {
	if len(e.Artifacts) == 0 {
		return options.ArtifactAll, nil
	}

	known := []string{"consts", "names", "stringer"}

	var set options.ArtifactEnum
	for _, name := range e.Artifacts {
		switch name {
		default:
			if suggestion, ok := match.Closest(name, known); ok {
				return options.ArtifactNone, fmt.Errorf("unknown artifact %q (did you mean %q?)", name, suggestion)
			}
			return options.ArtifactNone, fmt.Errorf("unknown artifact %q (want consts, names or stringer)", name)
		case "consts":
			set |= options.ArtifactConsts
		case "names":
			set |= options.ArtifactNames
		case "stringer":
			set |= options.ArtifactStringer
		}
	}

	return set, nil
}
