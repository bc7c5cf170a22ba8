package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/viant/patmatch/builder/golang"
	"github.com/viant/patmatch/corpus"
	"github.com/viant/patmatch/locator"
)

// Locates the strongest known patterns within the syntax tree of a Go source
// file: example <corpusURL> <target.go>
func main() {
	if len(os.Args) != 3 {
		log.Fatalf("usage: %s <corpusURL> <target.go>", os.Args[0])
	}
	ctx := context.Background()

	patterns, err := corpus.New().LoadTreePatterns(ctx, os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	target, err := golang.NewTreeBuilder(nil).BuildFile(ctx, os.Args[2])
	if err != nil {
		log.Fatal(err)
	}

	result, err := locator.New(locator.WithWorkers(4)).LocateTree(ctx, target, patterns)
	if err != nil {
		log.Fatal(err)
	}
	if !result.Found() {
		fmt.Println("nothing suitable found")
		return
	}
	fmt.Printf("%d suitable pattern(s), maximal subtree size %d:\n", len(result.Matches), result.Strength)
	for _, match := range result.Matches {
		fmt.Printf("  pattern %s mapping %v\n", match.Key, match.Mapping)
	}
}
