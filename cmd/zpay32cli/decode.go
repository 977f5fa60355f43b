package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/lnpaylab/zpay32x/zpay32"
)

var decodeCommand = cli.Command{
	Name:      "decode",
	Usage:     "decode a BOLT-11 payment request and print its fields as JSON.",
	ArgsUsage: "invoice",
	Action:    decodePaymentRequest,
}

func decodePaymentRequest(ctx *cli.Context) error {
	invoice := ctx.Args().First()
	if invoice == "" {
		return cli.ShowCommandHelp(ctx, "decode")
	}

	pr, err := zpay32.DecodePaymentRequest(invoice)
	if err != nil {
		return err
	}

	printJSON(struct {
		Prefix             string `json:"prefix"`
		HasAmount          bool   `json:"has_amount"`
		AmountPicoBTC      uint64 `json:"amount_pico_btc,omitempty"`
		Timestamp          uint64 `json:"timestamp"`
		NumTags            int    `json:"num_tags"`
		Expiry             uint64 `json:"expiry_seconds"`
		MinFinalCltvExpiry uint64 `json:"min_final_cltv_expiry"`
		RecoveryID         uint8  `json:"signature_recovery_id"`
	}{
		Prefix:             pr.Prefix,
		HasAmount:          pr.HasAmount,
		AmountPicoBTC:      uint64(pr.Amount),
		Timestamp:          pr.Timestamp,
		NumTags:            len(pr.Tags),
		Expiry:             pr.Expiry(),
		MinFinalCltvExpiry: pr.MinFinalCltvExpiry(),
		RecoveryID:         pr.Signature.RecoveryID,
	})

	return nil
}

func printJSON(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Fprintln(os.Stdout, string(b))
}
