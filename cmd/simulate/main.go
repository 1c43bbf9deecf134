// Command simulate plays sessions headlessly with the autopilot and prints
// a score summary.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/shared/leveldata"
	"github.com/automoto/bunnyhop/headless"
)

func main() {
	sessions := flag.Int("n", 20, "number of sessions")
	seed := flag.Uint64("seed", 1, "seed of the first session; later sessions count up")
	maxTicks := flag.Int("ticks", 60*60*10, "tick limit per session")
	flag.Parse()

	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	layout := leveldata.Default()

	results, err := headless.RunBatch(*seed, *sessions, *maxTicks, layout)
	if err != nil {
		log.Printf("Some sessions failed: %v", err)
	}

	printSummary(results)
}

func printSummary(results []headless.Result) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEED\tSCORE\tTICKS\tEND")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", r.Seed, r.Score, r.Ticks, r.Reason)
	}
	tw.Flush()

	if len(results) == 0 {
		return
	}
	scores := make([]int, len(results))
	total := 0
	for i, r := range results {
		scores[i] = r.Score
		total += r.Score
	}
	sort.Ints(scores)
	fmt.Printf("\nsessions %d  mean %.1f  median %d  best %d\n",
		len(results), float64(total)/float64(len(results)), scores[len(scores)/2], scores[len(scores)-1])
}
