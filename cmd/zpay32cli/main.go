package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	"github.com/urfave/cli"

	"github.com/lnpaylab/zpay32x/zpay32"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[zpay32cli] %v\n", err)
	os.Exit(1)
}

func main() {
	app := cli.NewApp()
	app.Name = "zpay32cli"
	app.Usage = "encode and decode BOLT-11 payment requests"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "configfile",
			Usage: "path to an ini-style config file overriding network/verbose defaults",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable debug logging of the codec",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		cfg, err := loadConfig(ctx.GlobalString("configfile"))
		if err != nil {
			return err
		}

		if cfg.Verbose || ctx.GlobalBool("verbose") {
			zpay32.UseLogger(btclog.NewBackend(os.Stderr).Logger("ZPAY"))
		}
		return nil
	}
	app.Commands = []cli.Command{
		decodeCommand,
		newPaymentHashCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}
