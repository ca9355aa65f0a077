package version

// Version is the modfence release version, overridable at build time with
// -ldflags "-X github.com/modfence/modfence/core/version.Version=...".
var Version = "0.1.0"
