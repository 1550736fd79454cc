package assets

import (
	"embed"
	"fmt"

	cfg "github.com/automoto/bowrange/config"
	"github.com/automoto/bowrange/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LoadRange parses the configured range map from the embedded levels.
func LoadRange() (*leveldata.RangeData, error) {
	return LoadRangeFile(cfg.Range.MapPath)
}

// LoadRangeFile parses an embedded range map by path.
func LoadRangeFile(path string) (*leveldata.RangeData, error) {
	data, err := leveldata.LoadRange(assetFS, path)
	if err != nil {
		return nil, fmt.Errorf("load range: %w", err)
	}
	return data, nil
}
