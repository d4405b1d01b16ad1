package main

import (
	"fmt"
	"io"
	"maps"
	"os"

	"github.com/signadot/jsonlit/encode"
	"github.com/signadot/jsonlit/eval"
	"github.com/signadot/jsonlit/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='encode with color'"`
	MaxDepth int  `cli:"name=maxDepth desc='maximum nesting depth, 0 for none'"`

	OutFormat *encode.Format
	Config    *FileConfig
	EnvEnv    map[string]any

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**encode.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := encode.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// optSet reports whether the main option name was given on the command
// line.
func (cfg *MainConfig) optSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) format() encode.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.Config != nil && cfg.Config.Format != "" {
		f, _ := encode.ParseFormat(cfg.Config.Format)
		return f
	}
	return encode.LiteralFormat
}

func (cfg *MainConfig) parseOpts(env map[string]any) []parse.ParseOption {
	maxDepth := cfg.MaxDepth
	all := eval.Env{}
	if cfg.Config != nil {
		if maxDepth == 0 {
			maxDepth = cfg.Config.MaxDepth
		}
		maps.Copy(all, cfg.Config.Env)
	}
	maps.Copy(all, cfg.EnvEnv)
	maps.Copy(all, env)
	return []parse.ParseOption{
		parse.WithEnv(all),
		parse.MaxDepth(maxDepth),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmat := cfg.format()
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
	}
	if fmat != encode.LiteralFormat {
		return res
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	if cfg.optSet("color") {
		return res
	}
	if cfg.Config != nil && cfg.Config.Color != nil {
		if *cfg.Config.Color {
			res = append(res, encode.EncodeColors(encode.NewColors()))
		}
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type BuildConfig struct {
	*MainConfig
	Env  map[string]any
	File string `cli:"name=f desc='read literals from file, - for stdin'"`

	Build *cli.Command
}

type EqConfig struct {
	*MainConfig
	String  bool `cli:"name=s desc='consider arguments literal text rather than files'"`
	Reverse bool `cli:"name=r desc='reverse the reported differences'"`

	Eq *cli.Command
}

type LoadConfig struct {
	*MainConfig

	Load *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}
