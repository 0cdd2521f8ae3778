package fsstore

import (
	"flag"
	"fmt"
	"strings"

	"xdao.co/identicon/store"
	"xdao.co/identicon/store/registry"
)

var flagDir string

func init() {
	registry.MustRegister(registry.Backend{
		Name:        "fs",
		Description: "filesystem avatar store (sharded by CID under -fs-dir)",
		Usage:       registry.UsageCLI | registry.UsageDaemon,
		RegisterFlags: func(fs *flag.FlagSet) {
			fs.StringVar(&flagDir, "fs-dir", "", "Avatar store directory (for -backend=fs)")
		},
		Open: func() (store.Store, func() error, error) {
			dir := strings.TrimSpace(flagDir)
			if dir == "" {
				return nil, nil, fmt.Errorf("missing -fs-dir")
			}
			s, err := New(dir)
			if err != nil {
				return nil, nil, err
			}
			return s, nil, nil
		},
	})
}
