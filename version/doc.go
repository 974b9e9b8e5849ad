// Package version reports build information for seqkit binaries.
//
// Values set with -ldflags win over what the Go toolchain embeds:
//
//	go build -ldflags "-X github.com/kbukum/seqkit/version.Version=1.0.0" ./cmd/seqdemo
package version
