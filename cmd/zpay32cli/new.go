package main

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/urfave/cli"

	"github.com/lnpaylab/zpay32x/zpay32"
)

var newPaymentHashCommand = cli.Command{
	Name:  "new",
	Usage: "build and sign a sample payment request against an ephemeral keypair, for testing.",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "prefix",
			Value: "lnbc",
			Usage: "bech32 human-readable prefix, e.g. lnbc, lntb, lnbcrt",
		},
		cli.StringFlag{
			Name:  "description",
			Value: "zpay32cli test invoice",
		},
		cli.Uint64Flag{
			Name:  "amount_pico_btc",
			Usage: "invoice amount in pico-bitcoin; 0 means no amount",
		},
		cli.Uint64Flag{
			Name:  "expiry",
			Value: 3600,
		},
	},
	Action: newPaymentRequest,
}

func newPaymentRequest(ctx *cli.Context) error {
	privKey, err := btcec.NewPrivateKey()
	if err != nil {
		return err
	}

	var hash [32]byte
	if _, err := rand.Read(hash[:]); err != nil {
		return err
	}

	amount := zpay32.PicoBTC(ctx.Uint64("amount_pico_btc"))

	pr := &zpay32.PaymentRequest{
		Prefix:    ctx.String("prefix"),
		Amount:    amount,
		HasAmount: amount != 0,
		Timestamp: uint64(time.Now().Unix()),
		Tags: []zpay32.Tag{
			zpay32.PaymentHashTag{Hash: hash},
			zpay32.DescriptionTag{Text: ctx.String("description")},
			zpay32.ExpiryTag{Seconds: ctx.Uint64("expiry")},
		},
	}

	digest, err := pr.SigningDigest()
	if err != nil {
		return err
	}

	signer := zpay32.MessageSigner{
		SignCompact: func(h []byte) ([]byte, error) {
			return ecdsa.SignCompact(privKey, h, true), nil
		},
	}

	sig, err := zpay32.Sign(signer, digest)
	if err != nil {
		return err
	}
	pr.Signature = *sig

	invoice, err := zpay32.EncodePaymentRequest(pr)
	if err != nil {
		return err
	}

	fmt.Println(invoice)
	return nil
}
