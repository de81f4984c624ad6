package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/b88/zugzwang/pkg/engine"
	"github.com/b88/zugzwang/pkg/engine/console"
	"github.com/b88/zugzwang/pkg/engine/uci"
	"github.com/b88/zugzwang/pkg/eval"
	"github.com/b88/zugzwang/pkg/search"
	"github.com/seekerror/logw"
)

var (
	noise = flag.Int("noise", 10, "Evaluation noise in millipawns (zero if deterministic)")
	hash  = flag.Uint("hash", 32, "Transposition table size in MB (zero disables it)")
	depth = flag.Uint("depth", 0, "Default search depth limit (zero if unlimited)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: zugzwang [options]

ZUGZWANG is a simple UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	s := search.PVS{
		Eval: search.Quiescence{Eval: eval.Material{}},
	}
	e := engine.New(ctx, "zugzwang", "b88", s, engine.WithOptions(engine.Options{
		Depth: *depth,
		Hash:  *hash,
		Noise: uint(*noise),
	}))

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		// Use UCI protocol.

		driver, out := uci.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	case console.ProtocolName:
		driver, out := console.NewDriver(ctx, e, s, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
