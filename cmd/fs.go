package main

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// nativeFS resolves relative paths against the working directory and
// absolute paths as they are.
type nativeFS struct {
	osfs.ChrootOS
}

func newNativeFS() billy.Filesystem {
	return &nativeFS{}
}

func (n *nativeFS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

func (n *nativeFS) Root() string {
	return "/"
}
