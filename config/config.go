// Package config loads named option presets from a YAML file, letting
// a caller check in a "feedmill.yaml" of presets (e.g.
// "ja-aggressive", "en-conservative") instead of constructing
// normalizer/pmi/wordextract options by hand. A field the preset
// leaves out keeps its package default; asking Load for a preset name
// the file does not define is an error.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/libraz/suzume-feedmill/errs"
	"github.com/libraz/suzume-feedmill/linefilter"
	"github.com/libraz/suzume-feedmill/pmi"
	"github.com/libraz/suzume-feedmill/unicodeutil"
	"github.com/libraz/suzume-feedmill/wordextract"
)

// NormalizePreset overlays normalizer.Options; pointer fields are
// unset (nil) when the preset doesn't mention them, so the loader
// only overrides what's actually present in the YAML.
type NormalizePreset struct {
	Form       *string `yaml:"form"`
	FoldCase   *bool   `yaml:"foldCase"`
	MinLength  *int    `yaml:"minLength"`
	MaxLength  *int    `yaml:"maxLength"`
}

// PMIPreset overlays pmi.Options.
type PMIPreset struct {
	N            *int     `yaml:"n"`
	TopK         *int     `yaml:"topK"`
	MinFrequency *int64   `yaml:"minFrequency"`
	Verbose      *bool    `yaml:"verbose"`
}

// WordExtractPreset overlays the most commonly tuned fields of
// wordextract.Options; the rest keep wordextract.DefaultOptions()'s
// values.
type WordExtractPreset struct {
	MinPMIScore  *float64 `yaml:"minPmiScore"`
	MinLength    *int     `yaml:"minLength"`
	MaxLength    *int     `yaml:"maxLength"`
	MinScore     *float64 `yaml:"minScore"`
	TopK         *int     `yaml:"topK"`
	LanguageCode *string  `yaml:"languageCode"`
}

// Preset is one named configuration entry in a presets file.
type Preset struct {
	Normalize   NormalizePreset    `yaml:"normalize"`
	PMI         PMIPreset          `yaml:"pmi"`
	WordExtract WordExtractPreset  `yaml:"wordExtract"`
}

// File is the top-level shape of a presets YAML file: a map from
// preset name to its Preset.
type File struct {
	Presets map[string]Preset `yaml:"presets"`
}

// Load reads path and returns the preset named name.
func Load(path, name string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Preset{}, errs.New("config.Load", errs.NotFound, path, err)
		}
		return Preset{}, errs.NewIO("config.Load", errs.Generic, path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Preset{}, errs.New("config.Load", errs.Malformed, path, err)
	}

	preset, ok := f.Presets[name]
	if !ok {
		return Preset{}, errs.Invalid("config.Load", "no preset named "+name+" in "+path)
	}
	return preset, nil
}

// ApplyNormalizeForm resolves the preset's form name ("nfc"/"nfkc")
// to a unicodeutil.Form, defaulting to FormCanonical when unset or
// unrecognized.
func (p NormalizePreset) ApplyNormalizeForm() unicodeutil.Form {
	if p.Form == nil {
		return unicodeutil.FormCanonical
	}
	switch *p.Form {
	case "nfkc":
		return unicodeutil.FormCompatibility
	default:
		return unicodeutil.FormCanonical
	}
}

// ApplyLineFilter overlays the preset's min/max length onto base.
func (p NormalizePreset) ApplyLineFilter(base linefilter.Options) linefilter.Options {
	if p.MinLength != nil {
		base.MinLength = *p.MinLength
	}
	if p.MaxLength != nil {
		base.MaxLength = *p.MaxLength
	}
	return base
}

// ApplyFoldCase resolves the preset's fold-case flag, defaulting to
// false when unset.
func (p NormalizePreset) ApplyFoldCase() bool {
	return p.FoldCase != nil && *p.FoldCase
}

// Apply overlays the preset onto base.
func (p PMIPreset) Apply(base pmi.Options) pmi.Options {
	if p.N != nil {
		base.N = *p.N
	}
	if p.TopK != nil {
		base.TopK = *p.TopK
	}
	if p.MinFrequency != nil {
		base.MinFrequency = *p.MinFrequency
	}
	if p.Verbose != nil {
		base.Verbose = *p.Verbose
	}
	return base
}

// Apply overlays the preset onto base, typically
// wordextract.DefaultOptions().
func (p WordExtractPreset) Apply(base wordextract.Options) wordextract.Options {
	if p.MinPMIScore != nil {
		base.MinPMIScore = *p.MinPMIScore
	}
	if p.MinLength != nil {
		base.MinLength = *p.MinLength
	}
	if p.MaxLength != nil {
		base.MaxLength = *p.MaxLength
	}
	if p.MinScore != nil {
		base.MinScore = *p.MinScore
	}
	if p.TopK != nil {
		base.TopK = *p.TopK
	}
	if p.LanguageCode != nil {
		base.LanguageCode = *p.LanguageCode
	}
	return base
}
