//go:build linux || freebsd

package native

const defaultLibraryName = "libiup.so"
