// msgviewer reads a MessagePack-encoded file and prints its contents
// as a hierarchical tree, one node per encoded value, annotated with
// byte offsets. Input comes from a file argument or stdin.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Flast/msgviewer/internal/config"
	"github.com/Flast/msgviewer/internal/logging"
	"github.com/Flast/msgviewer/internal/msgpack"
	"github.com/Flast/msgviewer/internal/render"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := logging.Configure("msgviewer", logging.ProfileRuntime)

	var (
		configPath string
		initConfig string
		format     string
		encoding   string
		strict     bool
		offsets    bool
		maxSize    int64
	)

	def := config.Default()
	flag.StringVar(&configPath, "config", "", "path to a TOML config file")
	flag.StringVar(&initConfig, "init-config", "", "write a sample config file to this path and exit")
	flag.StringVar(&format, "format", def.Output.Format, "output format: text or json")
	flag.StringVar(&encoding, "encoding", def.Encoding, "text convention for str payloads: utf-8 or latin-1")
	flag.BoolVar(&strict, "strict", def.Strict, "fail when reserved (0xc1) tags are present")
	flag.BoolVar(&offsets, "offsets", def.Output.Offsets, "annotate text output with byte offsets")
	flag.Int64Var(&maxSize, "max-size", def.MaxInputBytes, "maximum input size in bytes")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() > 1 {
		usage()
		return 2
	}

	if initConfig != "" {
		if err := config.WriteTemplate(initConfig, false); err != nil {
			logger.Error().Err(err).Msg("write sample config")
			return 2
		}
		logger.Info().Str("path", initConfig).Msg("sample config written")
		return 0
	}

	cfg := def
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			logger.Error().Err(err).Msg("load config")
			return 2
		}
		cfg = loaded
	}

	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Output.Format = format
		case "encoding":
			cfg.Encoding = encoding
		case "strict":
			cfg.Strict = strict
		case "offsets":
			cfg.Output.Offsets = offsets
		case "max-size":
			cfg.MaxInputBytes = maxSize
		}
	})
	if err := config.Validate(cfg); err != nil {
		logger.Error().Err(err).Msg("invalid options")
		return 2
	}

	data, src, err := readInput(flag.Arg(0), cfg.MaxInputBytes)
	if err != nil {
		logger.Error().Err(err).Str("input", src).Msg("read input")
		return 1
	}

	tree, decodeErr := msgpack.Decode(data, cfg.DecodeOptions())

	if err := output(tree, cfg); err != nil {
		logger.Error().Err(err).Msg("render")
		return 1
	}

	code := 0
	if decodeErr != nil {
		var de *msgpack.DecodeError
		evt := logger.Error().Str("input", src)
		if errors.As(decodeErr, &de) {
			evt = evt.Int("offset", de.Offset)
		}
		evt.Err(decodeErr).Msg("decode incomplete")
		code = 1
	}
	if cfg.Strict && len(tree.Reserved) > 0 {
		logger.Error().Ints("offsets", tree.Reserved).Msg("reserved tags present")
		code = 1
	}
	return code
}

func readInput(path string, maxSize int64) ([]byte, string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(io.LimitReader(os.Stdin, maxSize+1))
		if err != nil {
			return nil, "stdin", err
		}
		if int64(len(data)) > maxSize {
			return nil, "stdin", fmt.Errorf("input exceeds %d bytes", maxSize)
		}
		return data, "stdin", nil
	}

	st, err := os.Stat(path)
	if err != nil {
		return nil, path, err
	}
	if st.Size() > maxSize {
		return nil, path, fmt.Errorf("input is %d bytes, limit %d", st.Size(), maxSize)
	}
	data, err := os.ReadFile(path)
	return data, path, err
}

func output(tree *msgpack.Tree, cfg config.Config) error {
	switch cfg.Output.Format {
	case "json":
		return render.JSON(os.Stdout, tree)
	default:
		return render.Text(os.Stdout, tree, render.Options{Offsets: cfg.Output.Offsets})
	}
}

func usage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s [options] [file]\n", prog)
	fmt.Fprintf(os.Stderr, "\nInspect a MessagePack buffer as a value tree. Reads stdin when no file is given.\n")
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  %s payload.bin\n", prog)
	fmt.Fprintf(os.Stderr, "  %s -format json -encoding latin-1 payload.bin\n", prog)
	fmt.Fprintf(os.Stderr, "  curl -s $URL | %s -strict\n", prog)
}
