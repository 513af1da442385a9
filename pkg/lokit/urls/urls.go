// Package urls builds the absolute URL strings the native library requires
// for document locations. Construction goes through the validating helpers
// below, so a DocURL in hand is always well-formed. Resolution is purely
// local: filesystem canonicalization plus percent-encoding, no network
// access.
package urls

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// DocURL is a validated absolute document URL.
type DocURL struct {
	raw string
}

func (u DocURL) String() string { return u.raw }

// IsZero reports whether u was produced by a constructor.
func (u DocURL) IsZero() bool { return u.raw == "" }

// URLError reports a path that could not be resolved to a document URL.
// Always a caller input problem, never a native library failure.
type URLError struct {
	Path string
	Msg  string
	Err  error
}

func (e *URLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("urls: %s: %s: %v", e.Path, e.Msg, e.Err)
	}
	return fmt.Sprintf("urls: %s: %s", e.Path, e.Msg)
}

func (e *URLError) Unwrap() error { return e.Err }

// LocalIntoAbs resolves a relative or absolute path of an existing local
// file into a file URL. The path is canonicalized first, so it must exist.
func LocalIntoAbs(path string) (DocURL, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return DocURL{}, &URLError{Path: path, Msg: "cannot make path absolute", Err: err}
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return DocURL{}, &URLError{Path: path, Msg: "does the file exist?", Err: err}
	}
	return LocalAsAbs(resolved)
}

// LocalAsAbs converts an absolute local path into a file URL without
// checking that the file exists. Relative paths are rejected, matching the
// native library's expectations.
func LocalAsAbs(path string) (DocURL, error) {
	if !filepath.IsAbs(path) {
		return DocURL{}, &URLError{Path: path, Msg: "path must be absolute"}
	}
	return fileURL(path), nil
}

// LocalForSave absolutizes a destination path into a file URL. The file need
// not exist yet; parent resolution is left to the native library.
func LocalForSave(path string) (DocURL, error) {
	if path == "" {
		return DocURL{}, &URLError{Path: path, Msg: "empty destination path"}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return DocURL{}, &URLError{Path: path, Msg: "cannot make path absolute", Err: err}
	}
	return fileURL(abs), nil
}

// Remote validates uri as an absolute remote URI and wraps it unchanged.
// Whether the scheme is actually loadable depends on the native library's
// build.
func Remote(uri string) (DocURL, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return DocURL{}, &URLError{Path: uri, Msg: "cannot parse URI", Err: err}
	}
	if !u.IsAbs() || u.Host == "" {
		return DocURL{}, &URLError{Path: uri, Msg: "URI must be absolute with a host"}
	}
	return DocURL{raw: uri}, nil
}

func fileURL(abs string) DocURL {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return DocURL{raw: u.String()}
}
