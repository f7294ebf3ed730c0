package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/fundomain/pkg/domain"
	"github.com/matzehuels/fundomain/pkg/errors"
	"github.com/matzehuels/fundomain/pkg/pipeline"
)

// loadConfig reads pipeline options from a .toml, .yaml/.yml or .json file.
// Unknown keys are rejected.
func loadConfig(path string) (pipeline.Options, error) {
	var opts pipeline.Options

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.Decode(string(data), &opts)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return opts, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q in %s", undecoded[0].String(), path)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&opts); err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&opts); err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	default:
		return opts, errors.New(errors.ErrCodeInvalidConfig,
			"unsupported config file %q (want .toml, .yaml or .json)", path)
	}
	return opts, nil
}

// domainFlags are the enumeration flags shared by render, cosets and index.
type domainFlags struct {
	config string
	choice string
	seed   uint64
	limit  int
}

func (f *domainFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "read options from a .toml, .yaml or .json file")
	cmd.Flags().StringVar(&f.choice, "choice", pipeline.DefaultChoice,
		"choice function: "+strings.Join(domain.ChoiceNames(), ", "))
	cmd.Flags().Uint64Var(&f.seed, "seed", pipeline.DefaultSeed, "random seed for the randomized choices")
	cmd.Flags().IntVar(&f.limit, "limit", pipeline.DefaultLimit,
		fmt.Sprintf("maximum number of representatives (at most %d)", pipeline.MaxLimit))
}

// options loads the config file, if any, and then applies the group argument
// and every flag the user set explicitly.
func (f *domainFlags) options(cmd *cobra.Command, args []string) (pipeline.Options, error) {
	var opts pipeline.Options
	if f.config != "" {
		var err error
		if opts, err = loadConfig(f.config); err != nil {
			return opts, err
		}
	}
	if len(args) > 0 {
		opts.Group = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("choice") {
		opts.Choice = f.choice
	}
	if flags.Changed("seed") {
		opts.Seed = f.seed
	}
	if flags.Changed("limit") {
		opts.Limit = f.limit
	}
	return opts, nil
}
