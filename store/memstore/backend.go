package memstore

import (
	"flag"

	"xdao.co/identicon/store"
	"xdao.co/identicon/store/registry"
)

func init() {
	registry.MustRegister(registry.Backend{
		Name:          "mem",
		Description:   "in-memory avatar store (contents are lost on exit)",
		Usage:         registry.UsageDaemon,
		RegisterFlags: func(fs *flag.FlagSet) {},
		Open: func() (store.Store, func() error, error) {
			return New(), nil, nil
		},
	})
}
