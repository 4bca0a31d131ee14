// Package estimate combines a parameter count and a quantization tag into a
// rough memory footprint.
package estimate

import (
	units "github.com/docker/go-units"

	"vramest/internal/params"
	"vramest/internal/quant"
	"vramest/pkg/types"
)

// Memory returns params*bits/8 bytes and its MiB and GiB equivalents.
func Memory(numParams int64, bits int) types.Size {
	b := float64(numParams) * float64(bits) / 8
	return types.Size{
		Bytes: b,
		MiB:   b / units.MiB,
		GiB:   b / units.GiB,
	}
}

// Calculator sizes models against a quantization table.
type Calculator struct {
	table quant.Table
}

// New returns a Calculator backed by t.
func New(t quant.Table) *Calculator { return &Calculator{table: t} }

// Table returns the table the calculator looks tags up in.
func (c *Calculator) Table() quant.Table { return c.table }

// Calculate parses param, looks up tag and estimates the footprint. Errors
// satisfy params.IsParseError or quant.IsUnknownTag.
func (c *Calculator) Calculate(param, tag string) (types.Estimate, error) {
	n, err := params.Parse(param)
	if err != nil {
		logger().Debug().Str("parameter", param).Err(err).Msg("parse failed")
		return types.Estimate{}, err
	}
	bits, err := c.table.Bits(tag)
	if err != nil {
		logger().Debug().Str("quantization", tag).Int("known_tags", c.table.Len()).Msg("lookup miss")
		return types.Estimate{}, err
	}
	size := Memory(n, bits)
	logger().Debug().
		Str("parameter", param).
		Int64("params", n).
		Str("quantization", tag).
		Int("bits", bits).
		Float64("bytes", size.Bytes).
		Msg("estimated")
	return types.Estimate{
		Parameter:    param,
		Quantization: tag,
		Params:       n,
		Bits:         bits,
		Size:         size,
		Human:        units.BytesSize(size.Bytes),
	}, nil
}
