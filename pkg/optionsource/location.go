package optionsource

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Location identifies where a document lives so a Loader can fetch it.
type Location interface {
	Kind() LocationKind
	Location() string
}

// LocationKind enumerates the loader modalities.
type LocationKind string

const (
	LocationKindFile LocationKind = "file"
	LocationKindFS   LocationKind = "fs"
	LocationKindURL  LocationKind = "url"
)

type fileLocation struct {
	path string
}

func (l fileLocation) Location() string   { return l.path }
func (l fileLocation) Kind() LocationKind { return LocationKindFile }

// FileLocation points at a path on disk.
func FileLocation(path string) Location {
	return fileLocation{path: filepath.Clean(path)}
}

type fsLocation struct {
	name string
}

func (l fsLocation) Location() string   { return l.name }
func (l fsLocation) Kind() LocationKind { return LocationKindFS }

// FSLocation points at a file inside the loader's fs.FS.
func FSLocation(name string) Location {
	return fsLocation{name: name}
}

type urlLocation struct {
	raw string
}

func (l urlLocation) Location() string   { return l.raw }
func (l urlLocation) Kind() LocationKind { return LocationKindURL }

// URLLocation validates raw and points at it.
func URLLocation(raw string) (Location, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("optionsource: empty URL location")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return nil, fmt.Errorf("optionsource: invalid URL %q: %w", raw, err)
	}
	return urlLocation{raw: raw}, nil
}

// ParseLocation picks a URL location for http(s) references and a file
// location otherwise.
func ParseLocation(ref string) (Location, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.New("optionsource: location is required")
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return URLLocation(ref)
	}
	return FileLocation(ref), nil
}

// Document is a fetched payload together with its origin.
type Document struct {
	location Location
	raw      []byte
}

// NewDocument wraps raw. Both arguments are required.
func NewDocument(loc Location, raw []byte) (Document, error) {
	if loc == nil {
		return Document{}, errors.New("optionsource: location is required")
	}
	if len(raw) == 0 {
		return Document{}, fmt.Errorf("optionsource: document %q is empty", loc.Location())
	}
	return Document{location: loc, raw: append([]byte(nil), raw...)}, nil
}

// Location returns the document origin.
func (d Document) Location() Location {
	return d.location
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}
