package lokit

// Version is the wrapper's semantic version, populated at build time via
// ldflags. In development it defaults to v0.0.0-dev.
var Version = "v0.0.0-dev"

// WrapperVersion returns the binding layer's own version. The native
// library's version is reported per instance by Office.LibraryVersion.
func WrapperVersion() string {
	return Version
}
