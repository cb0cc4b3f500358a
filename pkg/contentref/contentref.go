// DolphinXR
// Copyright (c) 2026 The DolphinXR Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of DolphinXR.
//
// DolphinXR is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DolphinXR is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DolphinXR.  If not, see <http://www.gnu.org/licenses/>.

// Package contentref turns mangled content references back into document
// URIs the companion app can open.
//
// A mangled reference is a document URI with unencoded child names appended
// after the document id, for example:
//
//	content://com.android.externalstorage.documents/tree/primary%3AGames/document/primary%3AGames/GameCube/mkdd.rvz
//
// which unmangles to the document URI of primary:Games/GameCube/mkdd.rvz.
package contentref

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	SchemeContent   = "content"
	documentSegment = "/document/"
)

// ErrNotFound is returned when a reference cannot be resolved to a document.
var ErrNotFound = errors.New("content reference not found")

// Resolver resolves a mangled content reference.
type Resolver interface {
	Unmangle(ref string) (*url.URL, error)
}

// DocumentResolver unmangles references to storage access framework
// documents. Authorities, when set, restricts which providers are accepted.
type DocumentResolver struct {
	Authorities []string
}

func (r DocumentResolver) Unmangle(ref string) (*url.URL, error) {
	// Child names after the document id are not escaped, so only the
	// provider part goes through the URI parser.
	idx := strings.Index(ref, documentSegment)
	if idx < 0 {
		return nil, fmt.Errorf("%w: no document id: %s", ErrNotFound, ref)
	}
	u, err := url.Parse(ref[:idx])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if !strings.EqualFold(u.Scheme, SchemeContent) || u.Host == "" {
		return nil, fmt.Errorf("%w: not a content uri: %s", ErrNotFound, ref)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return nil, fmt.Errorf("%w: query before document id: %s", ErrNotFound, ref)
	}
	if !r.allowed(u.Host) {
		return nil, fmt.Errorf("%w: unknown provider: %s", ErrNotFound, u.Host)
	}

	parts := strings.Split(ref[idx+len(documentSegment):], "/")
	docID := unescapeName(parts[0])
	if docID == "" {
		return nil, fmt.Errorf("%w: bad document id: %s", ErrNotFound, ref)
	}

	for _, child := range parts[1:] {
		name := unescapeName(child)
		if name == "" || name == "." || name == ".." {
			return nil, fmt.Errorf("%w: bad child name %q", ErrNotFound, child)
		}
		docID = strings.TrimSuffix(docID, "/") + "/" + name
	}

	return &url.URL{
		Scheme:  u.Scheme,
		User:    u.User,
		Host:    u.Host,
		Path:    u.Path + documentSegment + docID,
		RawPath: u.EscapedPath() + documentSegment + encodeDocumentID(docID),
	}, nil
}

// unescapeName decodes a path segment, keeping it verbatim when it is not
// valid percent-encoding, e.g. "100% Mario.rvz".
func unescapeName(segment string) string {
	name, err := url.PathUnescape(segment)
	if err != nil {
		return segment
	}
	return name
}

// encodeDocumentID escapes a document id the way document providers
// expect, including the ':' separating the root from the path.
func encodeDocumentID(id string) string {
	return strings.ReplaceAll(url.PathEscape(id), ":", "%3A")
}

func (r DocumentResolver) allowed(host string) bool {
	if len(r.Authorities) == 0 {
		return true
	}
	for _, a := range r.Authorities {
		if strings.EqualFold(a, host) {
			return true
		}
	}
	return false
}

// Resolve unmangles ref with r and falls back to parsing ref as a plain
// URI when it cannot be resolved. A ref that is not a valid URI is kept
// verbatim as an opaque URI. Only resolver errors other than ErrNotFound
// are returned.
func Resolve(r Resolver, ref string) (*url.URL, error) {
	u, err := r.Unmangle(ref)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	u, err = url.Parse(ref)
	if err != nil {
		log.Debug().Err(err).Msgf("keeping unparseable reference verbatim: %s", ref)
		return &url.URL{Opaque: ref}, nil
	}
	return u, nil
}
