package gamedata

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrBadColor is returned for colour strings that are not #RRGGBB.
var ErrBadColor = errors.New("bad hex color")

// ParseHexColor converts "#RRGGBB" (the # is optional) to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("%w: %q", ErrBadColor, hex)
	}

	rgb, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("%w: %q: %v", ErrBadColor, hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}
