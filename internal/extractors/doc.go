// Package extractors normalises heterogeneous uploaded files into a
// single plain-text blob per document.
//
// One extractor exists per source type (txt, csv, json, pdf), selected
// through a registry keyed by domain.SourceType. File extensions the
// registry does not recognise are treated as plain text.
package extractors
