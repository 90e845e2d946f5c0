package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/chronos-tachyon/crc"
	"github.com/chronos-tachyon/crc/internal/crc32"
	getopt "github.com/pborman/getopt/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var (
	flagVersion   = false
	flagDebug     = false
	flagTrace     = false
	flagLogStderr = false

	flagAlgorithm     = "CRC-32"
	flagCustom        = ""
	flagList          = false
	flagFormat        = FormatFlag{crc.HexFormat}
	flagReference     = false
	flagNoHardware    = false
	flagVerifyCatalog = false
	flagCPUInfo       = false
	flagBufferBits    = BufferBitsFlag{crc.DefaultBufferBits}
	flagJobs          = runtime.GOMAXPROCS(0)

	flagCPUProfile = ""
	flagMemProfile = ""
)

func init() {
	getopt.SetParameters("[<input> ...]")

	getopt.FlagLong(&flagVersion, "version", 'V', "print version and exit")

	getopt.FlagLong(&flagDebug, "verbose", 'v', "enable debug logging")
	getopt.FlagLong(&flagTrace, "debug", 'D', "enable debug and trace logging")
	getopt.FlagLong(&flagLogStderr, "log-stderr", 'L', "log JSON to stderr")

	getopt.FlagLong(&flagCPUProfile, "cpu-profile", 0, "CPU profile output file")
	getopt.FlagLong(&flagMemProfile, "mem-profile", 0, "memory profile output file")

	getopt.FlagLong(&flagAlgorithm, "algorithm", 'a', "CRC preset name or alias, e.g. CRC-32, CRC-16/XMODEM, or CRC-82/DARC")
	getopt.FlagLong(&flagCustom, "custom", 0, "custom CRC parameters as a catalogue line, e.g. 'width=16 poly=0x1021 init=0 refin=false refout=false xorout=0 check=0x31c3 name=\"MINE\"'")
	getopt.FlagLong(&flagList, "list", 'l', "list the preset catalog and exit")
	getopt.FlagLong(&flagFormat, "format", 'F', "output format; one of hex, hex-upper, or decimal")
	getopt.FlagLong(&flagReference, "reference", 0, "compute with the bit-serial reference instead of the table engine")
	getopt.FlagLong(&flagNoHardware, "no-hardware", 0, "never use CPU CRC instructions")
	getopt.FlagLong(&flagVerifyCatalog, "verify-catalog", 0, "cross-check every preset against the bit-serial reference and exit")
	getopt.FlagLong(&flagCPUInfo, "cpu-info", 0, "describe CPU CRC support and exit")
	getopt.FlagLong(&flagBufferBits, "buffer-bits", 'B', "base-2 logarithm of the read buffer size; one of default, or 8 through 20")
	getopt.FlagLong(&flagJobs, "jobs", 'j', "number of inputs to hash concurrently")
}

func main() {
	getopt.Parse()

	if flagVersion {
		fmt.Println(strings.TrimSpace(version))
		os.Exit(0)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.DurationFieldUnit = time.Second
	zerolog.DurationFieldInteger = false
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if flagTrace {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	switch {
	case flagLogStderr:
		// do nothing

	default:
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)

	if flagJobs < 1 {
		flagJobs = 1
	}

	log.Logger.Debug().
		Str("cpu", crc32.Describe()).
		Msg("hardware probe")

	opts := []crc.Option{
		crc.WithTracers(crc.Log(log.Logger)),
		crc.WithHardware(!flagNoHardware),
		crc.WithBufferBits(flagBufferBits.Value),
	}

	switch {
	case flagCPUInfo:
		fmt.Println(crc32.Describe())
		return

	case flagList:
		doList()
		return

	case flagVerifyCatalog:
		err := crc.VerifyCatalog(context.Background(), opts...)
		if err != nil {
			log.Logger.Fatal().
				Err(err).
				Msg("crc.VerifyCatalog failed")
		}
		log.Logger.Info().
			Int("presets", crc.NumPresets()).
			Msg("catalog verified")
		return
	}

	if flagCPUProfile != "" {
		f, err := os.OpenFile(flagCPUProfile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
		if err != nil {
			log.Logger.Fatal().
				Str("filename", flagCPUProfile).
				Err(err).
				Msg("os.OpenFile(O_WRONLY|O_CREATE|O_TRUNC) failed")
		}

		defer func() {
			err := f.Close()
			if err != nil {
				log.Logger.Error().
					Str("filename", flagCPUProfile).
					Err(err).
					Msg("failed to Close CPU profiling output file")
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Logger.Fatal().
				Err(err).
				Msg("pprof.StartCPUProfile failed")
		}

		defer pprof.StopCPUProfile()
	}

	cache := crc.NewCache(
		crc.WithModelOptions(opts...),
		crc.WithCacheTracers(crc.Log(log.Logger)),
		crc.WithConcurrency(flagJobs))

	engine, err := resolveEngine(cache)
	if err != nil {
		log.Logger.Fatal().
			Str("algorithm", flagAlgorithm).
			Str("custom", flagCustom).
			Err(err).
			Msg("failed to construct CRC engine")
	}

	log.Logger.Debug().
		Stringer("key", engine.Key()).
		Stringer("strategy", engine.Strategy()).
		Msg("engine ready")

	inputs := getopt.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	if !doHashInputs(os.Stdout, engine, inputs) {
		os.Exit(1)
	}

	if flagMemProfile != "" {
		f, err := os.OpenFile(flagMemProfile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
		if err != nil {
			log.Logger.Fatal().
				Str("filename", flagMemProfile).
				Err(err).
				Msg("failed to Open memory profiling output file")
		}
		err = pprof.Lookup("allocs").WriteTo(f, 0)
		if err != nil {
			_ = f.Close()
			log.Logger.Fatal().
				Str("filename", flagMemProfile).
				Err(err).
				Msg("failed to Write memory profile to output file")
		}
		err = f.Close()
		if err != nil {
			log.Logger.Fatal().
				Str("filename", flagMemProfile).
				Err(err).
				Msg("failed to Close memory profile output file")
		}
	}
}

func resolveEngine(cache *crc.Cache) (crc.Engine, error) {
	if flagCustom == "" {
		return cache.Resolve(flagAlgorithm)
	}
	def, err := crc.ParseDefinition(flagCustom)
	if err != nil {
		return nil, err
	}
	return cache.GetDefinition(def)
}

func doList() {
	for _, width := range crc.Families() {
		for _, def := range crc.PresetsByFamily(width) {
			fmt.Println(def.String())
		}
	}
}

type result struct {
	sum crc.Sum
	err error
}

func doHashInputs(w io.Writer, engine crc.Engine, inputs []string) bool {
	results := make([]result, len(inputs))

	var g errgroup.Group
	g.SetLimit(flagJobs)
	for index, name := range inputs {
		index, name := index, name
		g.Go(func() error {
			sum, err := hashInput(engine, name)
			results[index] = result{sum: sum, err: err}
			return nil
		})
	}
	_ = g.Wait()

	ok := true
	for index, name := range inputs {
		r := results[index]
		if r.err != nil {
			log.Logger.Error().
				Str("filename", name).
				Err(r.err).
				Msg("failed to hash input")
			ok = false
			continue
		}
		fmt.Fprintf(w, "%s  %s\n", r.sum.Render(flagFormat.Value), name)
	}
	return ok
}

func hashInput(engine crc.Engine, name string) (crc.Sum, error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return crc.Sum{}, err
		}
		defer f.Close()
		r = f
	}

	if flagReference {
		return crc.Bitwise(engine.Definition(), r)
	}
	return engine.ChecksumReader(r)
}
