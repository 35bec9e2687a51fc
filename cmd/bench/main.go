// README: Scenario runner; prices a fixed set of trips and checks the results.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	var strict bool
	var verbose bool
	flag.BoolVar(&strict, "strict", false, "exit non-zero on any failed scenario")
	flag.BoolVar(&verbose, "v", false, "print the full breakdown of every scenario")
	flag.Parse()

	results := runScenarios(verbose)

	fmt.Println("\n== Summary ==")
	pass, fail := 0, 0
	for _, r := range results {
		switch r.Status {
		case "PASS":
			pass++
		case "FAIL":
			fail++
		}
	}
	fmt.Printf("PASS=%d FAIL=%d\n", pass, fail)

	if fail > 0 && strict {
		os.Exit(1)
	}
}
