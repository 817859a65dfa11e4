package main

import (
	"fmt"
	"io"
	"os"

	"github.com/plistkit/go-plist/encode"
	"github.com/plistkit/go-plist/parse"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "plist").
		WithSynopsis("plist [opts] [file]").
		WithDescription("plist converts JSON or YAML input to XML property list output.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return plistMain(cfg, cc, args)
		})
}

func plistMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.J, cfg.Y) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	inPath := ""
	var data []byte
	switch len(args) {
	case 0:
		data, err = io.ReadAll(os.Stdin)
	case 1:
		inPath = args[0]
		data, err = os.ReadFile(inPath)
	default:
		return fmt.Errorf("%w: at most one input file", cli.ErrUsage)
	}
	if err != nil {
		return err
	}
	node, err := parse.Parse(data, cfg.parseOpts(inPath)...)
	if err != nil {
		return err
	}
	return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...)
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}
