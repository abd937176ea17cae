// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/sci-crypto/carregistryd/chain"
	"github.com/sci-crypto/carregistryd/command/carregistry-cli/configuration"
	"github.com/sci-crypto/carregistryd/version"
)

type metadata struct {
	file             string
	config           *configuration.Configuration
	save             bool
	testnet          bool
	verbose          bool
	connectionOffset int
	e                io.Writer
	w                io.Writer
}

func main() {

	app := cli.NewApp()
	app.Name = "carregistry-cli"
	// app.Usage = ""
	app.Version = version.Version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "",
			Usage: " connect to registry `NETWORK` [registry|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
		cli.IntFlag{
			Name:  "connection, c",
			Value: 0,
			Usage: " connection offset `N` into the configured node list",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise carregistry-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*carregistryd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "privateKey, k",
					Value: "",
					Usage: " using existing private key `KEY`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "privateKey, k",
					Value: "",
					Usage: "+using existing private key `KEY`",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+add a receive-only account `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "declare",
			Usage:     "register a new car to the current identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "vin, V",
					Value: "",
					Usage: "*vehicle identification number `VIN`",
				},
				cli.Uint64Flag{
					Name:  "year, y",
					Value: 0,
					Usage: "*production year `YEAR`",
				},
				cli.StringFlag{
					Name:  "model, m",
					Value: "",
					Usage: " car model `STRING`",
				},
				cli.StringFlag{
					Name:  "color, O",
					Value: "",
					Usage: " car color `STRING`",
				},
				cli.StringFlag{
					Name:  "fee, f",
					Value: defaultFee,
					Usage: " transaction fee `AMOUNT`",
				},
			},
			Action: runDeclare,
		},
		{
			Name:      "sell",
			Usage:     "offer a car to one buyer at a fixed price",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "car, C",
					Value: "",
					Usage: "*car identifier `CARID`",
				},
				cli.StringFlag{
					Name:  "buyer, b",
					Value: "",
					Usage: "*identity name or account to receive the car `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "price, P",
					Value: "",
					Usage: "*asking price `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "fee, f",
					Value: defaultFee,
					Usage: " transaction fee `AMOUNT`",
				},
			},
			Action: runSell,
		},
		{
			Name:      "buy",
			Usage:     "complete a sell order, paying the asking price",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "car, C",
					Value: "",
					Usage: "*car identifier `CARID`",
				},
				cli.StringFlag{
					Name:  "fee, f",
					Value: defaultFee,
					Usage: " transaction fee `AMOUNT`",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "cancel",
			Usage:     "cancel a sell order, returning the car",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "car, C",
					Value: "",
					Usage: "*car identifier `CARID`",
				},
				cli.StringFlag{
					Name:  "fee, f",
					Value: defaultFee,
					Usage: " transaction fee `AMOUNT`",
				},
			},
			Action: runCancel,
		},
		{
			Name:      "pay",
			Usage:     "transfer coin value to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*identity name or account to receive the coins `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*amount to transfer `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "fee, f",
					Value: defaultFee,
					Usage: " transaction fee `AMOUNT`",
				},
			},
			Action: runPay,
		},
		{
			Name:      "owned",
			Usage:     "list boxes owned by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name `ACCOUNT` default is global identity",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `COUNT`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "status",
			Usage:     "display the registration state of a car",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "car, C",
					Value: "",
					Usage: "+car identifier `CARID`",
				},
				cli.StringFlag{
					Name:  "vin, V",
					Value: "",
					Usage: "+vehicle identification number `VIN`",
				},
				cli.Uint64Flag{
					Name:  "year, y",
					Value: 0,
					Usage: " production year `YEAR`",
				},
				cli.StringFlag{
					Name:  "model, m",
					Value: "",
					Usage: " car model `STRING`",
				},
				cli.StringFlag{
					Name:  "color, O",
					Value: "",
					Usage: " car color `STRING`",
				},
			},
			Action: runStatus,
		},
		{
			Name:      "txstatus",
			Usage:     "display the status of a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction id to check status `TXID`",
				},
			},
			Action: runTransactionStatus,
		},
		{
			Name:   "info",
			Usage:  "display carregistryd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display carregistry-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version.Version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file for certain commands
		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		network := c.GlobalString("network")
		switch network {
		case "registry", "live":
			network = chain.Registry
		case "testing", "test", "":
			network = chain.Testing
		case "local", "regression":
			network = chain.Local
		default:
			return fmt.Errorf("network: %q can only be registry/testing/local", network)
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, network+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		switch command {

		case "setup":
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				testnet: network != chain.Registry,
				verbose: verbose,
				e:       e,
				w:       w,
			}

		case "generate":
			// key generation works without a configuration
			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				testnet: network != chain.Registry,
				verbose: verbose,
				e:       e,
				w:       w,
			}

		default:

			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			configData, err := configuration.Load(file)
			if nil != err {
				return err
			}

			offset := c.GlobalInt("connection")
			if offset < 0 || offset >= len(configData.Connections) {
				return fmt.Errorf("connection: %d out of range: [0..%d]", offset, len(configData.Connections)-1)
			}

			c.App.Metadata["config"] = &metadata{
				file:             file,
				config:           configData,
				save:             false,
				testnet:          configData.TestNet,
				verbose:          verbose,
				connectionOffset: offset,
				e:                e,
				w:                w,
			}
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
