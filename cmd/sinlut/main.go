// Command sinlut writes a quantized sine lookup table to sin_LUT.coe in the
// current directory, in the memory-initialization format read by FPGA
// block-memory generators.
//
// Usage:
//
//	sinlut [flags]
//
// The table parameters are fixed per preset:
//
//	quarter  512 entries, 16 bit, phase [0, π/2), radix 16 (default)
//	full     1024 entries, 16 bit, phase [0, 2π), radix 10
//
// Examples:
//
//	sinlut
//	sinlut -preset full -report
//	sinlut -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/sinlut/dsp/lut"
	"github.com/cwbudde/sinlut/measure/lutquality"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: init logger: %v\n", err)
		os.Exit(1)
	}

	code := run(os.Args[1:], os.Stdout, os.Stderr, logger)
	_ = logger.Sync()
	os.Exit(code)
}

func run(args []string, stdout, stderr io.Writer, logger *zap.Logger) int {
	fs := flag.NewFlagSet("sinlut", flag.ContinueOnError)
	fs.SetOutput(stderr)
	preset := fs.String("preset", "quarter", "table preset to write (see -list)")
	list := fs.Bool("list", false, "list available presets")
	report := fs.Bool("report", false, "print table quality after writing")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: sinlut [flags]\n\n")
		fmt.Fprintf(stderr, "Writes a quantized sine lookup table to %s.\n\n", lut.DefaultFile)
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  sinlut\n")
		fmt.Fprintf(stderr, "  sinlut -preset full -report\n")
		fmt.Fprintf(stderr, "  sinlut -list\n")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if *list {
		printList(stdout)
		return 0
	}

	cfg, err := lut.Preset(*preset)
	if err != nil {
		logger.Error("select preset", zap.String("preset", *preset), zap.Error(err))
		return 1
	}

	if err := lut.WriteFile(lut.DefaultFile, cfg); err != nil {
		logger.Error("write lut", zap.String("path", lut.DefaultFile), zap.Error(err))
		return 1
	}
	logger.Info("lut written",
		zap.String("path", lut.DefaultFile),
		zap.String("preset", *preset),
		zap.Int("samples", cfg.NumSamples),
		zap.Int("bits", cfg.BitWidth),
		zap.Stringer("radix", cfg.Radix),
	)

	if *report {
		if err := printReport(stdout, *preset, cfg); err != nil {
			logger.Error("write report", zap.Error(err))
			return 1
		}
	}
	return 0
}

func printList(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, p := range lut.Presets() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", p.Name, p.Config)
	}
	_ = tw.Flush()
}

func printReport(w io.Writer, name string, cfg lut.Config) error {
	res := lutquality.Analyze(lut.Generate(cfg), lutquality.Config{
		PhaseRange: cfg.PhaseRange,
		BitWidth:   cfg.BitWidth,
	})

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Preset\tSamples\tMin\tPeak\tMax err [LSB]\tRMS err [LSB]\tSINAD [dB]\tSFDR [dB]\tENOB\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "------\t-------\t---\t----\t-------------\t-------------\t----------\t---------\t----\n"); err != nil {
		return err
	}

	sinad, sfdr, enob := "-", "-", "-"
	if res.Spectral {
		sinad = fmt.Sprintf("%.2f", res.SINAD)
		sfdr = fmt.Sprintf("%.2f", res.SFDR)
		enob = fmt.Sprintf("%.2f", res.ENOB)
	}
	if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.4f\t%.4f\t%s\t%s\t%s\n",
		name,
		res.Samples,
		res.MinCode,
		res.PeakCode,
		res.MaxErrorLSB,
		res.RMSErrorLSB,
		sinad,
		sfdr,
		enob,
	); err != nil {
		return err
	}
	return tw.Flush()
}
