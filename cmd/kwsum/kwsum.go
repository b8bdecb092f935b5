// Command kwsum prints Keccak-256 digests of the named files or standard input, in the manner of
// sha256sum. With -bits, input is read as an ASCII string of 0 and 1 characters and hashed as a
// bit-level message of exactly that length, first character first.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/codahale/keccakwire"
	"github.com/codahale/keccakwire/digest"
)

func main() {
	bitMode := flag.Bool("bits", false, "read input as an ASCII string of 0/1 characters")
	flag.Parse()

	log := slog.New(slog.Default().Handler())

	names := flag.Args()
	if len(names) == 0 {
		names = []string{"-"}
	}

	failed := false
	for _, name := range names {
		sum, err := sumFile(log, name, *bitMode)
		if err != nil {
			log.Error("error hashing input", "name", name, "err", err)
			failed = true
			continue
		}
		fmt.Printf("%s  %s\n", sum, name)
	}

	if failed {
		os.Exit(1)
	}
}

func sumFile(log *slog.Logger, name string, bitMode bool) (string, error) {
	in := os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return "", err
		}
		defer func() {
			_ = f.Close()
		}()
		in = f
	}

	if bitMode {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", err
		}

		msg, err := parseBits(data)
		if err != nil {
			return "", err
		}

		plan := keccakwire.MustPlan(len(msg))
		log.Info("planned evaluation", "bits", plan.MessageBits(), "blocks", plan.Blocks(), "ops", plan.Cost().Total())

		return plan.Sum(msg).String(), nil
	}

	h := digest.New()
	if _, err := io.Copy(h, in); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

func parseBits(data []byte) ([]keccakwire.Bit, error) {
	msg := make([]keccakwire.Bit, 0, len(data))
	for _, c := range data {
		switch c {
		case '0':
			msg = append(msg, 0)
		case '1':
			msg = append(msg, 1)
		case ' ', '\t', '\r', '\n':
		default:
			return nil, fmt.Errorf("invalid bit character %q", c)
		}
	}

	if len(msg) == 0 {
		return nil, errors.New("no bits in input")
	}

	return msg, nil
}
