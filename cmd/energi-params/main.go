// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"gitlab.com/energi/energid/corelog"
	"gitlab.com/energi/energid/node/mining/genesisminer"
	"gitlab.com/energi/energid/types/chaincfg"
)

const (
	flagNet        = "net"
	flagTestNet60x = "enable-testnet60x"
	flagVerbose    = "verbose"
)

type App struct {
	out      io.Writer
	logger   zerolog.Logger
	registry *chaincfg.Registry
}

func main() {
	app := &App{out: os.Stdout}
	if err := app.cliApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func (app *App) cliApp() *cli.App {
	return &cli.App{
		Name:   "energi-params",
		Usage:  "inspect Energi network parameters",
		Writer: app.out,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  flagTestNet60x,
				Usage: "register the 60x test network",
			},
			&cli.BoolFlag{
				Name:    flagVerbose,
				Aliases: []string{"v"},
				Usage:   "log debug output to stderr",
			},
		},
		Before:   app.initRegistry,
		Commands: app.getCommands(),
	}
}

// initRegistry builds the registry once the global flags are known.
// Inconsistent built-in parameters end the process.
func (app *App) initRegistry(c *cli.Context) error {
	app.logger = corelog.Disabled
	if c.Bool(flagVerbose) {
		app.logger = corelog.New("PARM", zerolog.DebugLevel, corelog.Config{}.Default())
	}
	chaincfg.UseLogger(app.logger)
	genesisminer.UseLogger(app.logger)

	app.registry = chaincfg.NewRegistry(
		chaincfg.EnableTestNet60x(c.Bool(flagTestNet60x)),
		chaincfg.WithAbort(func(reason string) {
			fmt.Fprintln(os.Stderr, "inconsistent network parameters:", reason)
			os.Exit(2)
		}),
	)
	return nil
}

func netFlag(def chaincfg.NetName) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    flagNet,
		Aliases: []string{"n"},
		Usage:   "network name: main, test, test60 or regtest",
		Value:   def.String(),
	}
}

func (app *App) params(c *cli.Context) (*chaincfg.Params, error) {
	params, err := app.registry.Lookup(chaincfg.NetName(c.String(flagNet)))
	if err != nil {
		return nil, cli.Exit(err, 1)
	}
	return params, nil
}

func (app *App) getCommands() cli.Commands {
	return []*cli.Command{
		{
			Name:   "networks",
			Usage:  "list the registered networks",
			Action: app.networksCmd,
		},
		{
			Name:  "genesis",
			Usage: "print the genesis block of a network",
			Flags: []cli.Flag{
				netFlag(chaincfg.MainNetName),
				&cli.BoolFlag{Name: "dump", Usage: "dump the whole block structure"},
				&cli.BoolFlag{Name: "hex", Usage: "print the serialized block as hex"},
			},
			Action: app.genesisCmd,
		},
		{
			Name:  "bits",
			Usage: "convert between compact bits and targets",
			Subcommands: cli.Commands{
				{
					Name:      "decode",
					Usage:     "expand compact bits into a target",
					ArgsUsage: "<bits hex>",
					Flags:     []cli.Flag{netFlag(chaincfg.MainNetName)},
					Action:    app.bitsDecodeCmd,
				},
				{
					Name:      "encode",
					Usage:     "compress a target into compact bits",
					ArgsUsage: "<target hex>",
					Action:    app.bitsEncodeCmd,
				},
			},
		},
		{
			Name:  "checkpoints",
			Usage: "list the checkpoints of a network",
			Flags: []cli.Flag{
				netFlag(chaincfg.MainNetName),
				&cli.BoolFlag{Name: "csv", Usage: "print CSV instead of a table"},
			},
			Action: app.checkpointsCmd,
		},
		{
			Name:  "address",
			Usage: "encode and decode addresses",
			Subcommands: cli.Commands{
				{
					Name:      "encode",
					Usage:     "encode a 20 byte hash",
					ArgsUsage: "<hash160 hex>",
					Flags: []cli.Flag{
						netFlag(chaincfg.MainNetName),
						&cli.BoolFlag{Name: "p2sh", Usage: "the hash is a script hash"},
					},
					Action: app.addressEncodeCmd,
				},
				{
					Name:      "decode",
					Usage:     "decode an address and print its hash",
					ArgsUsage: "<address>",
					Flags:     []cli.Flag{netFlag(chaincfg.MainNetName)},
					Action:    app.addressDecodeCmd,
				},
				{
					Name:   "backbone",
					Usage:  "print the backbone address of a network",
					Flags:  []cli.Flag{netFlag(chaincfg.MainNetName)},
					Action: app.backboneCmd,
				},
			},
		},
		{
			Name:  "mine-genesis",
			Usage: "search a genesis nonce for modified parameters",
			Flags: []cli.Flag{
				netFlag(chaincfg.RegressionName),
				&cli.Uint64Flag{Name: "nonce", Usage: "first nonce to try"},
				&cli.Uint64Flag{Name: "time", Usage: "genesis timestamp, defaults to the network's"},
				&cli.StringFlag{Name: "bits", Usage: "compact bits in hex, defaults to the network's"},
				&cli.IntFlag{Name: "workers", Usage: "number of hashing goroutines"},
				&cli.Uint64Flag{Name: "max-tries", Usage: "give up after this many nonces"},
			},
			Action: app.mineGenesisCmd,
		},
	}
}
