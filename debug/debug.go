// Package debug holds opt-in developer tooling
//
// LaunchStats serves runtime statistics, backed by github.com/go-echarts/statsview:
//
//	localhost:12600/debug/statsview
//
// and standard Go pprof statistics at:
//
//	localhost:12600/debug/pprof/
package debug

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/lixenwraith/vi-pong/core"
)

const StatsAddress = "localhost:12600"
const statsURL = "/debug/statsview"

// startStats blocks serving the stats pages
var startStats = func() {
	viewer.SetConfiguration(viewer.WithAddr(StatsAddress))
	mgr := statsview.New()
	mgr.Start()
}

// LaunchStats starts the stats server on its own goroutine and reports the URL to output
func LaunchStats(output io.Writer) {
	core.Go(startStats)

	fmt.Fprintf(output, "stats server available at %s%s\n", StatsAddress, statsURL)
	log.Printf("debug: stats server at %s%s", StatsAddress, statsURL)
}

// DumpGraph writes a graphviz dot rendering of the values reachable from roots
func DumpGraph(w io.Writer, roots ...any) {
	memviz.Map(w, roots...)
}

// DumpGraphFile writes DumpGraph output to path
func DumpGraphFile(path string, roots ...any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("debug: %w", err)
	}
	DumpGraph(f, roots...)
	if err := f.Close(); err != nil {
		return fmt.Errorf("debug: %w", err)
	}
	log.Printf("debug: object graph written to %s", path)
	return nil
}
