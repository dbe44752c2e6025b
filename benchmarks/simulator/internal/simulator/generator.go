package simulator

import (
	"errors"
	"fmt"

	"github.com/maypok86/seqlist/benchmarks/simulator/internal/config"
	"github.com/maypok86/seqlist/benchmarks/simulator/internal/trace/generator"
)

func newGenerator(cfg config.Config) (traceGenerator, error) {
	mix := generator.Mix{
		InsertRatio: cfg.InsertRatio,
		RemoveRatio: cfg.RemoveRatio,
	}

	switch cfg.Type {
	case generator.ZipfType:
		return generator.NewZipf(cfg.Zipf.S, cfg.Zipf.V, cfg.Zipf.IMAX, mix, cfg.Limit), nil
	case generator.UniformType:
		return generator.NewUniform(cfg.Uniform.IMAX, mix, cfg.Limit), nil
	case generator.FileType:
		p := cfg.File.Paths[0]
		traceGenerator, err := generator.NewFile(p.Path, p.TraceType, cfg.Limit)
		if err != nil {
			return nil, fmt.Errorf("create trace generator from file: %w", err)
		}
		return traceGenerator, nil
	default:
		return nil, errors.New("unknown trace type")
	}
}
