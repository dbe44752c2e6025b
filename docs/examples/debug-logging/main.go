package main

import (
	"log/slog"
	"os"

	"github.com/maypok86/seqlist"
)

func main() {
	// Route debug records to stderr
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	list := seqlist.Must[int](&seqlist.Options{
		InitialCapacity: 2,
		Logger:          seqlist.NewDefaultLogger(),
	})

	// Prints "seqlist: buffer reallocated" on the third and fifth insertions
	for i := 0; i < 5; i++ {
		list.Add(i)
	}
}
