package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"

	"github.com/rawbytedev/span"
	"github.com/rawbytedev/span/internal/mapped"
)

// config holds the parsed CLI configuration for a demo run.
type config struct {
	n          int
	compress   bool
	mapped     bool
	memprofile string
	verbose    bool
}

func parseFlags() config {
	var cfg config
	flag.IntVar(&cfg.n, "n", 1024, "number of int64 elements to view")
	flag.BoolVar(&cfg.compress, "compress", false, "zstd-compress the raw byte view of the data")
	flag.BoolVar(&cfg.mapped, "mapped", false, "back the data with an anonymous memory mapping")
	flag.StringVar(&cfg.memprofile, "memprofile", "", "write a heap profile to this file")
	flag.BoolVar(&cfg.verbose, "verbose", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: spandemo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "spandemo builds non-owning views over a slice, an array and\n")
		fmt.Fprintf(os.Stderr, "optionally mapped memory, and reports what it sees.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	return cfg
}

func main() {
	logrus.SetOutput(os.Stdout)
	cfg := parseFlags()
	if cfg.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if err := run(cfg); err != nil {
		logrus.WithError(err).Error("spandemo failed")
		os.Exit(1)
	}
}

func run(cfg config) error {
	if cfg.n <= 0 {
		return fmt.Errorf("-n must be positive, got %d", cfg.n)
	}

	var v span.Span[int64]
	if cfg.mapped {
		r, err := mapped.New(cfg.n * 8)
		if err != nil {
			return err
		}
		defer r.Close()
		logrus.WithFields(logrus.Fields{"bytes": r.Len(), "mapped": r.Mapped()}).Debug("region ready")
		if err := r.MapErr(); err != nil {
			logrus.WithError(err).Debug("mapping failed, region is on the heap")
		}
		v, err = span.Reinterpret[int64](span.FromContainer[byte](r), span.Options{CheckAlignment: true})
		if err != nil {
			return fmt.Errorf("view mapped region: %w", err)
		}
	} else {
		v = span.Of(make([]int64, cfg.n))
	}
	for i := range v.Len() {
		v.Set(i, int64(i)*int64(i))
	}

	var sum int64
	for x := range v.Values() {
		sum += x
	}
	logrus.WithFields(logrus.Fields{
		"len":   v.Len(),
		"front": *v.Front(),
		"back":  *v.Back(),
		"sum":   sum,
	}).Info("view")

	k := min(4, v.Len())
	logrus.WithFields(logrus.Fields{
		"first":   v.First(k).Slice(),
		"last":    v.Last(k).Slice(),
		"subspan": v.SubspanN(v.Len()/2, min(k, v.Len()-v.Len()/2)).Slice(),
	}).Info("sub-views")

	arr := [5]int32{1, 2, 3, 4, 5}
	a := span.FromArray[int32](&arr)
	logrus.WithFields(logrus.Fields{"len": a.Len(), "front": *a.Front(), "back": *a.Back()}).Info("array view")

	if cfg.compress {
		if err := compress(v); err != nil {
			return err
		}
	}
	if cfg.memprofile != "" {
		f, err := os.Create(cfg.memprofile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("write heap profile: %w", err)
		}
	}
	return nil
}

// compress hands the raw bytes under v to zstd without copying them first,
// then checks the round trip.
func compress(v span.Span[int64]) error {
	raw, err := span.AsBytes(v)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return err
	}
	defer enc.Close()
	out := enc.EncodeAll(raw, nil)

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return err
	}
	defer dec.Close()
	back, err := dec.DecodeAll(out, nil)
	if err != nil {
		return fmt.Errorf("zstd round trip: %w", err)
	}
	if !bytes.Equal(back, raw) {
		return errors.New("zstd round trip mismatch")
	}
	logrus.WithFields(logrus.Fields{
		"raw":        len(raw),
		"compressed": len(out),
	}).Info("compressed byte view")
	return nil
}
