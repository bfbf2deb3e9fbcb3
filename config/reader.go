package config

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/a8m/envsubst"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"go.viam.com/asvplan/motionplan"
)

// ReadPlannerOptions reads planner options from a JSON or YAML file. Environment variables referenced in the file
// are expanded first. Options the file does not mention keep their defaults.
func ReadPlannerOptions(filePath string) (*motionplan.PlannerOptions, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	extra, err := decodeExtra(buf, filepath.Ext(filePath))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode planner options from %q", filePath)
	}
	opts, err := motionplan.NewPlannerOptionsFromExtra(extra)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid planner options in %q", filePath)
	}
	return opts, nil
}

func decodeExtra(buf []byte, ext string) (map[string]interface{}, error) {
	extra := map[string]interface{}{}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(buf, &extra); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(buf, &extra); err != nil {
			return nil, err
		}
	}
	return extra, nil
}
