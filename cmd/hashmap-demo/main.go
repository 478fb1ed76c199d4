package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lojhan/hashmap/internal/logutil"
	"github.com/lojhan/hashmap/internal/store"
)

var samplePairs = [][2]string{
	{"apple", "red"},
	{"banana", "yellow"},
	{"carrot", "orange"},
	{"dog", "brown"},
	{"elephant", "gray"},
	{"frog", "green"},
	{"grape", "purple"},
	{"hat", "black"},
	{"ice cream", "white"},
	{"jacket", "blue"},
	{"kite", "pink"},
	{"lion", "golden"},
}

func main() {
	capacity := flag.Int("capacity", store.DefaultInitialCapacity, "Initial number of buckets")
	loadFactor := flag.Float64("load-factor", store.DefaultLoadFactor, "Occupancy ratio above which the table doubles")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFormat := flag.String("log-format", "console", "Log format: console, json")
	logFile := flag.String("log-file", "", "Log file name (empty logs to stderr)")
	logMaxSize := flag.Int("log-max-size", 100, "Maximum log file size in megabytes before rotation")
	logMaxDays := flag.Int("log-max-days", 0, "Days to keep rotated log files (0 = forever)")
	logMaxBackups := flag.Int("log-max-backups", 0, "Rotated log files to keep (0 = all)")
	dump := flag.Bool("dump", false, "Print the bucket layout after populating the table")
	flag.Parse()

	logger, err := logutil.NewLogger(logutil.LogConfig{
		Level:      *logLevel,
		Format:     *logFormat,
		Filename:   *logFile,
		MaxSize:    *logMaxSize,
		MaxDays:    *logMaxDays,
		MaxBackups: *logMaxBackups,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	table, err := store.NewHashTableWithConfig[string](store.Config{
		InitialCapacity: *capacity,
		LoadFactor:      *loadFactor,
	}, store.WithLogger(logger))
	if err != nil {
		logger.Fatal("Invalid table configuration", zap.Error(err))
	}

	for _, pair := range samplePairs {
		table.Set(pair[0], pair[1])
	}
	stats := table.Stats()
	logger.Info("Table populated",
		zap.Int("size", stats.Size),
		zap.Int("capacity", stats.Capacity),
		zap.Int("resizes", stats.Resizes),
		zap.Int("longest_chain", stats.LongestChain))

	for _, key := range []string{"apple", "banana", "lion", "ice cream"} {
		printLookup(table, key)
	}

	for _, key := range []string{"dog", "cat"} {
		fmt.Printf("has(%q) = %t\n", key, table.Has(key))
	}

	fmt.Printf("delete(%q) = %t\n", "grape", table.Delete("grape"))
	printLookup(table, "grape")

	if *dump {
		fmt.Print(table.Dump())
	}
}

func printLookup(table *store.HashTable[string], key string) {
	if value, ok := table.Get(key); ok {
		fmt.Printf("get(%q) = %s\n", key, value)
		return
	}
	fmt.Printf("get(%q) = <not found>\n", key)
}
