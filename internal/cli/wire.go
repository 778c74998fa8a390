package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kbukum/gwkit/errors"
	"github.com/kbukum/gwkit/logger"
	"github.com/kbukum/gwkit/observability"
	"github.com/kbukum/gwkit/util"
	"github.com/kbukum/gwkit/wire"
)

// VarintCmd groups the varint subcommands.
type VarintCmd struct {
	Encode *VarintEncodeCmd `command:"encode" description:"Encode an unsigned integer"`
	Decode *VarintDecodeCmd `command:"decode" description:"Decode hex octets"`
}

// VarintEncodeCmd prints the octets of a value.
type VarintEncodeCmd struct {
	Args struct {
		Value string `positional-arg-name:"value" description:"decimal, 0x hex or 0o octal"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

type varintEncoding struct {
	Value  uint64 `json:"value" yaml:"value"`
	Octets string `json:"octets" yaml:"octets"`
	Length int    `json:"length" yaml:"length"`
}

func (c *VarintEncodeCmd) Execute(_ []string) error {
	v, err := parseUint(c.Args.Value, 64)
	if err != nil {
		return err
	}
	b := wire.EncodeVarint(v)
	res := varintEncoding{Value: v, Octets: util.FormatOctets(b), Length: len(b)}
	return c.app.render(res, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, res.Octets)
		return err
	})
}

// VarintDecodeCmd reads a value from hex octets.
type VarintDecodeCmd struct {
	Offset int `short:"s" long:"offset" default:"0" description:"octet to start decoding at"`
	Args   struct {
		Octets []string `positional-arg-name:"octets" description:"hex octets, e.g. 81 00"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

type varintDecoding struct {
	Value    uint64 `json:"value" yaml:"value"`
	Offset   int    `json:"offset" yaml:"offset"`
	Consumed int    `json:"consumed" yaml:"consumed"`
}

func (c *VarintDecodeCmd) Execute(_ []string) error {
	b, err := util.ParseOctets(strings.Join(c.Args.Octets, " "))
	if err != nil {
		return err
	}

	ctx, span := observability.StartSpan(c.app.ctx, observability.SpanWireDecode)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrOctets, len(b))

	v, n, err := wire.DecodeVarint(b, c.Offset)
	if err != nil {
		code := string(errors.Wrap(err).Code)
		observability.SetSpanError(ctx, err)
		c.app.metrics.RecordDecode(ctx, code)
		c.app.metrics.RecordError(ctx, code, "wire")
		logger.Get("wire").WithContext(ctx).Debug("decode failed", logger.ErrorFields("varint.decode", err))
		return err
	}
	c.app.metrics.RecordDecode(ctx, "ok")

	res := varintDecoding{Value: v, Offset: c.Offset, Consumed: n}
	return c.app.render(res, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%d (%d octets)\n", res.Value, res.Consumed)
		return err
	})
}

// NetLongCmd groups the network long subcommands.
type NetLongCmd struct {
	Encode *NetLongEncodeCmd `command:"encode" description:"Encode a 32-bit unsigned integer"`
	Decode *NetLongDecodeCmd `command:"decode" description:"Decode four hex octets"`
}

// NetLongEncodeCmd prints the four big-endian octets of a value.
type NetLongEncodeCmd struct {
	Args struct {
		Value string `positional-arg-name:"value"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

type netLong struct {
	Value  uint32 `json:"value" yaml:"value"`
	Octets string `json:"octets" yaml:"octets"`
}

func (c *NetLongEncodeCmd) Execute(_ []string) error {
	v, err := parseUint(c.Args.Value, 32)
	if err != nil {
		return err
	}
	b := make([]byte, wire.NetworkLongLen)
	if err := wire.EncodeNetworkLong(b, uint32(v)); err != nil {
		return err
	}
	res := netLong{Value: uint32(v), Octets: util.FormatOctets(b)}
	return c.app.render(res, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, res.Octets)
		return err
	})
}

// NetLongDecodeCmd reads a value from four hex octets.
type NetLongDecodeCmd struct {
	Args struct {
		Octets []string `positional-arg-name:"octets"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *NetLongDecodeCmd) Execute(_ []string) error {
	b, err := util.ParseOctets(strings.Join(c.Args.Octets, " "))
	if err != nil {
		return err
	}
	v, err := wire.DecodeNetworkLong(b)
	if err != nil {
		return err
	}
	res := netLong{Value: v, Octets: util.FormatOctets(b[:wire.NetworkLongLen])}
	return c.app.render(res, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, res.Value)
		return err
	})
}

func parseUint(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, errors.InvalidFormat("value", fmt.Sprintf("unsigned %d-bit integer", bits)).WithCause(err)
	}
	return v, nil
}
