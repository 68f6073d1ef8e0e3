package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	J "cuelang.org/go/encoding/json"
	"cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaFile string

// DEFAULT is the scenario used when no configuration files are given. It
// reproduces the classic u = (1, 2), v = (3, 5, 9) walkthrough.
//
//go:embed default.yaml
var DEFAULT []byte

func buildYAML(ctx *cue.Context, name string, src any) (*cue.Value, error) {
	yamlFile, err := yaml.Extract(name, src)
	if err != nil {
		return nil, err
	}

	value := ctx.BuildFile(yamlFile)
	if err := value.Err(); err != nil {
		return nil, err
	}

	return &value, nil
}

func readFile(ctx *cue.Context, path string) (*cue.Value, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("does not exist")
	}

	switch filepath.Ext(path) {
	case ".json":
		dataFile, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		dataExpr, err := J.Extract(path, dataFile)
		if err != nil {
			return nil, err
		}

		value := ctx.BuildExpr(dataExpr)
		if err := value.Err(); err != nil {
			return nil, err
		}

		return &value, nil
	case ".yaml", ".yml":
		return buildYAML(ctx, path, nil)
	}

	return nil, fmt.Errorf(
		"not in a valid format",
	)
}

func decode(schema cue.Value) (*Config, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	data, err := schema.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf(
			"could not aggregate config: %v",
			err,
		)
	}

	config := Config{}
	err = json.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// Process reads the provided configuration files in order, compiles them,
// and unifies them with the configuration file schema. If no configuration
// files are provided, the default scenario is used.
func Process(configPaths []string) (*Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaFile)
	if err := schema.Err(); err != nil {
		return nil, err
	}

	if len(configPaths) == 0 {
		value, err := buildYAML(ctx, "<default>", DEFAULT)
		if err != nil {
			return nil, err
		}

		schema = schema.Unify(*value)
		if err := schema.Err(); err != nil {
			return nil, fmt.Errorf(
				"invalid default config file: %v",
				err,
			)
		}
	}

	for _, path := range configPaths {
		value, err := readFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf(
				"could not process config file %s: %v",
				path,
				err,
			)
		}

		schema = schema.Unify(*value)
		if err := schema.Err(); err != nil {
			return nil, fmt.Errorf(
				"could not merge config file %s: %v",
				path,
				err,
			)
		}

		err = schema.Validate()
		if err != nil {
			return nil, fmt.Errorf(
				"config file %s is not valid: %v",
				path,
				err,
			)
		}
	}

	return decode(schema)
}
