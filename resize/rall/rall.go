// Package rall makes every resizer selectable by name.
package rall

import (
	"slices"
	"strings"

	"github.com/srlehn/termview/fit"
	"github.com/srlehn/termview/internal/errors"
	"github.com/srlehn/termview/resize/bild"
	"github.com/srlehn/termview/resize/caire"
	"github.com/srlehn/termview/resize/gift"
	"github.com/srlehn/termview/resize/imaging"
	"github.com/srlehn/termview/resize/nfnt"
	"github.com/srlehn/termview/resize/rdefault"
	"github.com/srlehn/termview/resize/rez"
	"github.com/srlehn/termview/resize/xdraw"
)

const Default = `default`

var resizers = map[string]func() fit.Resizer{
	Default:            func() fit.Resizer { return &rdefault.Resizer{} },
	`xdraw`:            xdraw.ApproxBiLinear,
	`xdraw-bilinear`:   xdraw.BiLinear,
	`xdraw-catmullrom`: xdraw.CatmullRom,
	`xdraw-nearest`:    xdraw.NearestNeighbor,
	`nfnt`:             func() fit.Resizer { return &nfnt.Resizer{} },
	`imaging`:          func() fit.Resizer { return &imaging.Resizer{} },
	`gift`:             func() fit.Resizer { return &gift.Resizer{} },
	`bild`:             func() fit.Resizer { return &bild.Resizer{} },
	`rez`:              func() fit.Resizer { return &rez.Resizer{} },
	`caire`:            func() fit.Resizer { return &caire.Resizer{} },
}

// ByName is case insensitive, the empty name selects Default.
func ByName(name string) (fit.Resizer, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) == 0 {
		name = Default
	}
	newResizer, ok := resizers[name]
	if !ok {
		return nil, errors.Errorf(`unknown resizer %q (available: %s)`, name, strings.Join(Names(), `, `))
	}
	return newResizer(), nil
}

// Names is sorted.
func Names() []string {
	names := make([]string, 0, len(resizers))
	for name := range resizers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
