package main

import (
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// yamlConfigLoader adapts a YAML file into a kong.Resolver, so any flag
// not given on the command line falls back to the file's value. Keys in
// the file are the flag names exactly as kong's `name:""` tags spell them
// (e.g. time-limit, no_pibt_swap).
func yamlConfigLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]interface{}{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, err
	}
	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (interface{}, error) {
		raw, ok := values[flag.Name]
		if !ok {
			return nil, nil
		}
		return raw, nil
	}), nil
}

// configPathFromArgs pre-scans argv for --config/-c so the path is known
// before kong's main parse pass runs (kong.Configuration needs the path
// up front to open and resolve defaults from).
func configPathFromArgs(args []string) string {
	for i, a := range args {
		switch {
		case a == "--config" || a == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		}
	}
	return ""
}
