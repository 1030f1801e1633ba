package cmd

import (
	"errors"
	"fmt"
	"math"

	"github.com/urfave/cli"
)

var errFlagOutOfRange = errors.New("eglview: flag value out of range")

// Read integer flags that only accept values in [0, MaxInt32].
func readUintFlags(ctx *cli.Context, names ...string) (map[string]uint32, error) {
	vals := make(map[string]uint32, len(names))
	for _, name := range names {
		val := ctx.Int(name)
		if val < 0 || int64(val) > math.MaxInt32 {
			return nil, fmt.Errorf("%w: --%s %d", errFlagOutOfRange, name, val)
		}
		vals[name] = uint32(val)
	}
	return vals, nil
}
