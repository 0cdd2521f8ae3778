package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"google.golang.org/grpc"

	"xdao.co/identicon/avatarrpc"
	"xdao.co/identicon/digest"
	"xdao.co/identicon/store/registry"

	_ "xdao.co/identicon/store/fsstore"
	_ "xdao.co/identicon/store/memstore"
)

func main() {
	fs := flag.NewFlagSet("identicond", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7707", "listen address")
	backend := fs.String("backend", "mem", "avatar store backend")
	hashName := fs.String("hash", "md5", "digest algorithm: md5 or blake2b")
	listBackends := fs.Bool("list-backends", false, "List supported backends and exit")

	registry.RegisterFlags(fs, registry.UsageDaemon)

	_ = fs.Parse(os.Args[1:])
	if *listBackends {
		for _, b := range registry.List(registry.UsageDaemon) {
			if b.Description == "" {
				_, _ = fmt.Fprintf(os.Stdout, "%s\n", b.Name)
				continue
			}
			_, _ = fmt.Fprintf(os.Stdout, "%s\t%s\n", b.Name, b.Description)
		}
		return
	}

	hasher, err := digest.ByName(*hashName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	st, closeFn, err := registry.Open(*backend, registry.UsageDaemon)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if closeFn != nil {
		defer closeFn()
	}

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lis.Close()

	s := grpc.NewServer()
	avatarrpc.RegisterAvatarServer(s, &avatarrpc.Server{Hasher: hasher, Store: st})

	fmt.Fprintf(os.Stderr, "identicond listening on %s (backend=%s, hash=%s)\n", lis.Addr().String(), *backend, hasher.Name())
	if err := s.Serve(lis); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
