// Command imbe-dump decodes a newline-delimited JSON stream of IMBE frames
// and writes raw little-endian float32 PCM to stdout.
package main

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/go-imbe/imbe"
)

var version = "dev"

// CLI defines the command-line interface for imbe-dump.
type CLI struct {
	Version bool   `short:"v" help:"Show version information"`
	Debug   bool   `short:"d" help:"Enable debug logging to stderr"`
	Workers int    `help:"Combiner worker count, must evenly divide 160" default:"4"`
	Seed    int64  `help:"RNG seed for unvoiced noise and phase perturbation" default:"1"`
	Input   string `arg:"" name:"input" help:"Path to a newline-delimited JSON frame file, or - for stdin" default:"-"`
}

// frameRecord is one line of the input format: chunks u0..u7 and error
// counts epsilon_0..epsilon_6.
type frameRecord struct {
	Chunks [8]uint32 `json:"chunks"`
	Errors [7]uint32 `json:"errors"`
}

func main() {
	cli := &CLI{}
	kong.Parse(cli,
		kong.Name("imbe-dump"),
		kong.Description("Decode IMBE frames to raw PCM"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	if cli.Version {
		fmt.Println("imbe-dump", version)
		return
	}

	logger := log.New(os.Stderr)
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	if err := run(cli, logger); err != nil {
		fmt.Fprintln(os.Stderr, "imbe-dump:", err)
		os.Exit(1)
	}
}

func run(cli *CLI, logger *log.Logger) error {
	in := os.Stdin
	if cli.Input != "-" {
		f, err := os.Open(cli.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	dec := imbe.NewDecoder(imbe.Config{
		Workers: cli.Workers,
		Seed:    cli.Seed,
		Logger:  logger,
	})

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec frameRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return fmt.Errorf("frame %d: %w", n, err)
		}

		samples, status, err := dec.Decode(imbe.Chunks(rec.Chunks), imbe.ErrorCounts(rec.Errors))
		if err != nil {
			return fmt.Errorf("frame %d: %w", n, err)
		}
		logger.Debug("decoded frame", "n", n, "status", status)

		for _, s := range samples {
			if err := binary.Write(out, binary.LittleEndian, s); err != nil {
				return err
			}
		}
		n++
	}

	if err := scanner.Err(); err != nil && err != io.EOF {
		return err
	}

	return nil
}
