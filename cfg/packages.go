// Package cfg
package cfg

import (
	"github.com/spf13/viper"

	"github.com/volumevault/vault-estimator/types"
)

type packagesFile struct {
	Durations []types.DurationPackages `mapstructure:"durations"`
}

// LoadPackages builds the package catalogue. An empty path returns the
// built-in table; otherwise the file (yaml, json or toml, by extension)
// replaces it entirely.
func LoadPackages(path string) (*types.Catalogue, error) {
	if path == "" {
		return types.DefaultCatalogue(), nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var file packagesFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, err
	}
	return types.NewCatalogue(file.Durations)
}
