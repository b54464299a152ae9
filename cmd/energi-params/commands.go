// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
	"gitlab.com/energi/energid/node/mining/genesisminer"
	"gitlab.com/energi/energid/nrgutil"
	"gitlab.com/energi/energid/txscript"
	"gitlab.com/energi/energid/types/pow"
)

// checkpointRow is the CSV layout of a checkpoint.
type checkpointRow struct {
	Net    string `csv:"net"`
	Height int32  `csv:"height"`
	Hash   string `csv:"hash"`
}

func (app *App) networksCmd(c *cli.Context) error {
	table := tablewriter.NewWriter(app.out)
	table.SetHeader([]string{"Name", "Magic", "Port", "RPC Port", "PoW Limit", "Subsidy", "Genesis"})
	for _, name := range app.registry.Names() {
		params, err := app.registry.Lookup(name)
		if err != nil {
			return cli.Exit(err, 1)
		}
		table.Append([]string{
			params.Name.String(),
			params.Net.String(),
			params.DefaultPort,
			params.RPCPort,
			fmt.Sprintf("%08x", params.Consensus.PowLimitBits),
			params.Consensus.BlockSubsidy.String(),
			params.GenesisHash().String(),
		})
	}
	table.Render()
	return nil
}

func (app *App) genesisCmd(c *cli.Context) error {
	params, err := app.params(c)
	if err != nil {
		return err
	}

	block := params.GenesisBlock()
	switch {
	case c.Bool("dump"):
		spew.Fdump(app.out, block)
	case c.Bool("hex"):
		fmt.Fprintln(app.out, hex.EncodeToString(block.Bytes()))
	default:
		hdr := block.Header
		fmt.Fprintf(app.out, "net:         %s\n", params.Name)
		fmt.Fprintf(app.out, "hash:        %s\n", params.GenesisHash())
		fmt.Fprintf(app.out, "merkle root: %s\n", params.GenesisMerkleRoot())
		fmt.Fprintf(app.out, "time:        %d (%s)\n", hdr.Timestamp.Unix(), hdr.Timestamp.UTC().Format(time.RFC3339))
		fmt.Fprintf(app.out, "bits:        %08x\n", hdr.Bits)
		fmt.Fprintf(app.out, "nonce:       %d\n", hdr.Nonce)
		fmt.Fprintf(app.out, "reward:      %s\n", nrgutil.Amount(block.Transactions[0].TxOut[0].Value))

		coinbase := block.Transactions[0]
		sigScript, err := txscript.DisasmString(coinbase.TxIn[0].SignatureScript)
		if err != nil {
			return cli.Exit(err, 1)
		}
		pkScript, err := txscript.DisasmString(coinbase.TxOut[0].PkScript)
		if err != nil {
			return cli.Exit(err, 1)
		}
		fmt.Fprintf(app.out, "coinbase:    %s\n", sigScript)
		fmt.Fprintf(app.out, "output:      %s\n", pkScript)
	}
	return nil
}

func parseBits(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	bits, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid compact bits %q: %v", s, err)
	}
	return uint32(bits), nil
}

func (app *App) bitsDecodeCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("exactly one compact value is required", 1)
	}
	bits, err := parseBits(c.Args().First())
	if err != nil {
		return cli.Exit(err, 1)
	}
	params, err := app.params(c)
	if err != nil {
		return err
	}

	target, negative, overflow := pow.DecodeCompact(bits)
	fmt.Fprintf(app.out, "target:     %064x\n", target)
	fmt.Fprintf(app.out, "negative:   %t\n", negative)
	fmt.Fprintf(app.out, "overflow:   %t\n", overflow)
	if !negative && !overflow && target.Sign() > 0 {
		fmt.Fprintf(app.out, "difficulty: %g\n", pow.Difficulty(bits, params.Consensus.PowLimit))
		fmt.Fprintf(app.out, "work:       %s\n", pow.CalcWork(bits))
	}
	return nil
}

func (app *App) bitsEncodeCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("exactly one target is required", 1)
	}
	s := strings.TrimPrefix(strings.ToLower(c.Args().First()), "0x")
	target, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return cli.Exit(fmt.Sprintf("invalid target %q", s), 1)
	}

	fmt.Fprintf(app.out, "%08x\n", pow.BigToCompact(target))
	return nil
}

func (app *App) checkpointsCmd(c *cli.Context) error {
	params, err := app.params(c)
	if err != nil {
		return err
	}

	rows := make([]checkpointRow, 0, len(params.Checkpoints.Checkpoints))
	for _, cp := range params.Checkpoints.Checkpoints {
		rows = append(rows, checkpointRow{
			Net:    params.Name.String(),
			Height: cp.Height,
			Hash:   cp.Hash.String(),
		})
	}

	if c.Bool("csv") {
		return gocsv.Marshal(&rows, app.out)
	}

	table := tablewriter.NewWriter(app.out)
	table.SetHeader([]string{"Height", "Hash"})
	for _, row := range rows {
		table.Append([]string{strconv.Itoa(int(row.Height)), row.Hash})
	}
	table.SetFooter([]string{"Last", time.Unix(params.Checkpoints.LastCheckpointTime, 0).UTC().Format(time.RFC3339)})
	table.Render()
	return nil
}

func (app *App) addressEncodeCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("exactly one hash is required", 1)
	}
	hash, err := hex.DecodeString(c.Args().First())
	if err != nil {
		return cli.Exit(err, 1)
	}
	params, err := app.params(c)
	if err != nil {
		return err
	}

	var addr *nrgutil.Address
	if c.Bool("p2sh") {
		addr, err = nrgutil.NewAddressScriptHashFromHash(hash, params.ScriptHashAddrID)
	} else {
		addr, err = nrgutil.NewAddressPubKeyHash(hash, params.PubKeyHashAddrID)
	}
	if err != nil {
		return cli.Exit(err, 1)
	}

	fmt.Fprintln(app.out, addr.EncodeAddress())
	return nil
}

func (app *App) addressDecodeCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("exactly one address is required", 1)
	}
	params, err := app.params(c)
	if err != nil {
		return err
	}

	addr, err := nrgutil.DecodeAddress(c.Args().First(), params.AddressPrefixes())
	if err != nil {
		return cli.Exit(err, 1)
	}

	kind := "p2pkh"
	if addr.IsScriptHash() {
		kind = "p2sh"
	}
	fmt.Fprintf(app.out, "%s %x\n", kind, addr.Hash160())
	return nil
}

func (app *App) backboneCmd(c *cli.Context) error {
	params, err := app.params(c)
	if err != nil {
		return err
	}

	addr, err := params.BackboneAddress()
	if err != nil {
		return cli.Exit(err, 1)
	}
	fmt.Fprintln(app.out, addr.EncodeAddress())
	return nil
}

func (app *App) mineGenesisCmd(c *cli.Context) error {
	params, err := app.params(c)
	if err != nil {
		return err
	}

	opts := params.Genesis
	opts.Nonce = c.Uint64("nonce")
	if c.IsSet("time") {
		opts.Time = uint32(c.Uint64("time"))
	}
	if c.IsSet("bits") {
		if opts.Bits, err = parseBits(c.String("bits")); err != nil {
			return cli.Exit(err, 1)
		}
	}

	miner, err := genesisminer.New(genesisminer.Config{
		Opts:     opts,
		PowLimit: params.Consensus.PowLimit,
		Hasher:   app.registry.Hasher(),
		Workers:  c.Int("workers"),
		MaxTries: c.Uint64("max-tries"),
	})
	if err != nil {
		return cli.Exit(err, 1)
	}

	res, err := miner.Solve(c.Context)
	if err != nil {
		return cli.Exit(err, 1)
	}

	fmt.Fprintf(app.out, "nonce:       %d\n", res.Nonce)
	fmt.Fprintf(app.out, "hash:        %s\n", res.Hash)
	fmt.Fprintf(app.out, "merkle root: %s\n", res.MerkleRoot)
	fmt.Fprintf(app.out, "hashes:      %d in %s\n", res.Hashes, res.Elapsed)
	return nil
}
