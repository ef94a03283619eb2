package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
	"golang.org/x/term"

	german "github.com/skiffdb/german-strings"
	"github.com/skiffdb/german-strings/column"
	"github.com/skiffdb/german-strings/dict"
)

func main() {
	var (
		corpusFile  = flag.String("corpus", "", "Path to newline-delimited corpus (.zst supported)")
		prefix      = flag.String("prefix", "", "Report rows whose content starts with this prefix")
		needle      = flag.String("eq", "", "Report rows whose content equals this value")
		sample      = flag.Int("sample", 5, "Matching rows to print per query")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *corpusFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -corpus <file> [-prefix p] [-eq value] [-sample n]")
		fmt.Fprintln(os.Stderr, "       inspect -corpus <file> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		dict.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(*corpusFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*corpusFile, *prefix, *needle, *sample); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(corpusFile, prefix, needle string, sample int) error {
	ctx := context.Background()

	// Load corpus
	d := dict.New()
	c := column.New()
	rows, err := loadCorpus(corpusFile, d, c)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	// Show storage accounting
	stats := d.Stats()
	fp := c.Footprint()
	fmt.Printf("Corpus: %s\n", corpusFile)
	fmt.Printf("Rows: %d\n", rows)
	fmt.Printf("Distinct: %d (short %d, long %d)\n", stats.Entries, stats.Short, stats.Long)
	fmt.Printf("Dedup hits: %d\n", stats.DedupHits)
	fmt.Printf("Column slab: %s (%d bytes/row)\n", formatBytes(fp.SlabBytes), german.Size)
	fmt.Printf("Column arena: %s used, %s reserved\n", formatBytes(fp.ArenaBytes), formatBytes(fp.ArenaCap))
	fmt.Printf("Dict arena: %s used, %s reserved\n", formatBytes(stats.ArenaBytes), formatBytes(stats.ArenaCap))

	width := outputWidth()

	if prefix != "" {
		matches, err := c.ScanPrefix(ctx, []byte(prefix))
		if err != nil {
			return fmt.Errorf("prefix scan: %w", err)
		}
		fmt.Printf("\nRows starting with %q: %d\n", prefix, len(matches))
		printSample(c, matches, sample, width)
	}

	if needle != "" {
		nv, err := german.NewFromString(needle)
		if err != nil {
			return fmt.Errorf("build needle: %w", err)
		}
		matches, err := c.ScanEqual(ctx, &nv)
		if err != nil {
			return fmt.Errorf("equality scan: %w", err)
		}
		fmt.Printf("\nRows equal to %q: %d\n", needle, len(matches))
		printSample(c, matches, sample, width)
	}

	return nil
}

// loadCorpus feeds every line of the corpus into the dictionary and the
// column. Scanner buffers are borrowed; both sinks copy on ingest.
func loadCorpus(path string, d *dict.Dict, c *column.Column) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return 0, fmt.Errorf("zstd reader: %w", err)
		}
		defer dec.Close()
		r = dec
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	rows := 0
	for sc.Scan() {
		line := sc.Bytes()
		if _, err := d.Put(line); err != nil {
			return rows, fmt.Errorf("dict put: %w", err)
		}
		if _, err := c.Append(line); err != nil {
			return rows, fmt.Errorf("column append: %w", err)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return rows, fmt.Errorf("scan: %w", err)
	}
	return rows, nil
}

func printSample(c *column.Column, matches []int, sample, width int) {
	for i, row := range matches {
		if i >= sample {
			fmt.Printf("  ... %d more\n", len(matches)-sample)
			break
		}
		v := c.Value(row)
		class := "short"
		if v.IsLong() {
			class = "long"
		}
		fmt.Printf("  row %-8d %-5s len=%-6d %s\n", row, class, v.Len(), preview(v.String(), width-36))
	}
}

func outputWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 120
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 120
	}
	return w
}

func preview(s string, max int) string {
	if max < 8 {
		max = 8
	}
	q := fmt.Sprintf("%q", s)
	if len(q) <= max {
		return q
	}
	return q[:max-4] + `..."`
}

func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/float64(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/float64(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
