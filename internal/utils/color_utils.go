package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/errs"
)

// HexToColor parses a 6 character hex value ("ff0000", optionally "#ff0000")
// into a 24-bit RGB integer. Sign prefixes are not hex digits and are
// rejected.
func HexToColor(value string) (int, error) {
	value = strings.TrimPrefix(value, "#")
	if len(value) != 6 {
		return 0, errs.ErrInvalidHexColor
	}
	color, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return 0, errs.ErrInvalidHexColor
	}
	return int(color), nil
}

// ColorToHex formats a 24-bit RGB integer as "#rrggbb".
func ColorToHex(color int) string {
	return fmt.Sprintf("#%06x", color&0xffffff)
}
