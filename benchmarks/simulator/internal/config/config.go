package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/maypok86/seqlist/benchmarks/simulator/internal/parser"
	"github.com/maypok86/seqlist/benchmarks/simulator/internal/trace/generator"
	"github.com/maypok86/seqlist/benchmarks/simulator/internal/workload"
)

type Config struct {
	Type        string   `toml:"type"`
	Name        string   `toml:"name"`
	Sizes       []uint   `toml:"sizes"`
	Lists       []string `toml:"lists"`
	Limit       *uint    `toml:"limit"`
	Placement   string   `toml:"placement"`
	InsertRatio float64  `toml:"insert_ratio"`
	RemoveRatio float64  `toml:"remove_ratio"`

	Zipf    *Zipf    `toml:"zipf"`
	Uniform *Uniform `toml:"uniform"`
	File    *File    `toml:"file"`
}

func (c *Config) validate() error {
	if c.Type != generator.ZipfType && c.Type != generator.UniformType && c.Type != generator.FileType {
		return errors.New("not valid trace type")
	}

	if c.Name == "" {
		return errors.New("name is empty")
	}

	if len(c.Sizes) == 0 {
		return errors.New("sizes is empty")
	}

	if len(c.Lists) == 0 {
		return errors.New("lists is empty")
	}

	if !workload.IsAvailablePlacement(c.Placement) {
		return fmt.Errorf("not valid placement: %q", c.Placement)
	}

	if c.InsertRatio < 0 || c.RemoveRatio < 0 || c.InsertRatio+c.RemoveRatio > 1 {
		return errors.New("not valid operation ratios. insert_ratio and remove_ratio should be non-negative and sum up to at most 1")
	}

	switch c.Type {
	case generator.ZipfType:
		if c.Limit == nil {
			return errors.New("unbounded zipf trace")
		}

		if c.Zipf == nil {
			return errors.New("not found parameters for zipf trace")
		}

		if c.Uniform != nil || c.File != nil {
			return errors.New("found parameters for another trace type, although the config is specified as zipf")
		}
	case generator.UniformType:
		if c.Limit == nil {
			return errors.New("unbounded uniform trace")
		}

		if c.Uniform == nil {
			return errors.New("not found parameters for uniform trace")
		}

		if c.Zipf != nil || c.File != nil {
			return errors.New("found parameters for another trace type, although the config is specified as uniform")
		}
	case generator.FileType:
		if c.Zipf != nil || c.Uniform != nil {
			return errors.New("found parameters for a generated trace, although the config is specified as file")
		}

		if c.File == nil {
			return errors.New("not found parameters for trace from file")
		}
	}

	if err := c.Zipf.validate(); err != nil {
		return err
	}

	if err := c.Uniform.validate(); err != nil {
		return err
	}

	return c.File.validate()
}

type Zipf struct {
	S    float64 `toml:"s"`
	V    float64 `toml:"v"`
	IMAX uint64  `toml:"imax"`
}

func (z *Zipf) validate() error {
	if z == nil {
		return nil
	}

	if z.S <= 1 {
		return errors.New("not valid s parameter for zipf generator. S should be > 1")
	}

	if z.V < 1 {
		return errors.New("not valid v parameter for zipf generator. V should be >= 1")
	}

	return nil
}

type Uniform struct {
	IMAX uint64 `toml:"imax"`
}

func (u *Uniform) validate() error {
	if u == nil {
		return nil
	}

	if u.IMAX == 0 {
		return errors.New("not valid imax parameter for uniform generator. IMAX should be > 0")
	}

	return nil
}

type FilePath struct {
	TraceType string `toml:"trace_type"`
	Path      string `toml:"path"`
}

func (fp *FilePath) validate() error {
	if fp == nil {
		return nil
	}

	if !parser.IsAvailableFormat(fp.TraceType) {
		return errors.New("not valid trace type")
	}

	if fp.Path == "" {
		return errors.New("trace path is empty")
	}

	return nil
}

type File struct {
	Paths []FilePath `toml:"paths"`
}

func (f *File) validate() error {
	if f == nil {
		return nil
	}

	if len(f.Paths) == 0 {
		return errors.New("paths is empty")
	}

	for _, p := range f.Paths {
		if err := p.validate(); err != nil {
			return err
		}
	}

	return nil
}

func Load(configPath string) (Config, error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := toml.Unmarshal(content, &c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := c.validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}
