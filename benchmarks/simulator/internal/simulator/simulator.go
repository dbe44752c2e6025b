package simulator

import (
	"cmp"
	"context"
	"fmt"
	"log"
	"runtime"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/maypok86/seqlist/benchmarks/client"
	"github.com/maypok86/seqlist/benchmarks/simulator/internal/config"
	"github.com/maypok86/seqlist/benchmarks/simulator/internal/report"
	"github.com/maypok86/seqlist/benchmarks/simulator/internal/report/simulation"
	"github.com/maypok86/seqlist/benchmarks/simulator/internal/workload"
)

func getClients() map[string]client.Client[uint64] {
	cl := []client.Client[uint64]{
		&client.Seqlist[uint64]{},
		&client.Slice[uint64]{},
		&client.Deque[uint64]{},
	}

	clients := make(map[string]client.Client[uint64], len(cl))
	for _, c := range cl {
		clients[c.Name()] = c
	}
	return clients
}

type Simulator struct {
	cfg config.Config
}

func New(cfg config.Config) (Simulator, error) {
	names := getClients()
	for _, name := range cfg.Lists {
		if _, ok := names[name]; !ok {
			return Simulator{}, fmt.Errorf("not valid list name: %s", name)
		}
	}

	return Simulator{
		cfg: cfg,
	}, nil
}

// Run replays the trace for every list and size and returns the results grouped
// by list in config order, each group sorted by size.
func (s Simulator) Run(ctx context.Context) ([][]simulation.Result, error) {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())

	listToPriority := make(map[string]int, len(s.cfg.Lists))
	for i, name := range s.cfg.Lists {
		listToPriority[name] = i
	}

	var mutex sync.Mutex
	table := make([][]simulation.Result, len(s.cfg.Lists))
	for i := 0; i < len(table); i++ {
		table[i] = make([]simulation.Result, 0, len(s.cfg.Sizes))
	}

	for _, size := range s.cfg.Sizes {
		// every simulation needs its own client instance.
		clients := getClients()
		for _, name := range s.cfg.Lists {
			c := clients[name]
			eg.Go(func() error {
				r, err := s.simulateList(ctx, c, size)
				if err != nil {
					return err
				}

				mutex.Lock()
				prior := listToPriority[r.Name()]
				table[prior] = append(table[prior], r)
				mutex.Unlock()
				return nil
			})
		}
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	for _, results := range table {
		slices.SortFunc(results, func(a, b simulation.Result) int {
			return cmp.Compare(a.Size(), b.Size())
		})
	}
	return table, nil
}

func (s Simulator) Simulate() error {
	table, err := s.Run(context.Background())
	if err != nil {
		return err
	}

	log.Println("All simulations are complete")

	reporter := report.NewReporter(s.cfg.Name, table)
	if err := reporter.Report(); err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}

func (s Simulator) simulateList(ctx context.Context, c client.Client[uint64], unsignedSize uint) (simulation.Result, error) {
	//nolint:gosec // there will never be an overflow
	size := int(unsignedSize)
	c.Init(max(size, 1))
	defer c.Close()

	w := workload.New(s.cfg.Placement, c)
	w.Prefill(size)
	prefillMoves := c.Moves()

	traceGenerator, err := newGenerator(s.cfg)
	if err != nil {
		return simulation.Result{}, err
	}

	stream := traceGenerator.Generate()
	var elapsed time.Duration
	for {
		e, ok := stream.Next()
		if !ok {
			break
		}

		start := time.Now()
		w.Record(e)
		elapsed += time.Since(start)
	}

	if err := ctx.Err(); err != nil {
		return simulation.Result{}, err
	}

	var movesPerOp, nsPerOp float64
	if applied := w.Applied(); applied > 0 {
		movesPerOp = float64(c.Moves()-prefillMoves) / float64(applied)
		nsPerOp = float64(elapsed.Nanoseconds()) / float64(applied)
	}
	r := simulation.NewResult(c.Name(), size, movesPerOp, nsPerOp)

	log.Printf(
		"Simulation for list %s at size %d completed with %0.2f moves/op, %0.1f ns/op (%d events skipped)\n",
		r.Name(),
		r.Size(),
		r.MovesPerOp(),
		r.NsPerOp(),
		w.Skipped(),
	)

	return r, nil
}
