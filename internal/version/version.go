// internal/version/version.go
package version

// Version is stamped at build time:
//
//	go build -ldflags "-X fastachar/internal/version.Version=v1.2.3" ./cmd/fastachar
var Version = "dev"
