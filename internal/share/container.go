// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package share

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"
)

// Fixed member names of a share container.
const (
	PayloadName   = "container.share.kdbx"
	SignatureName = "container.share.signature"
)

// MaxMemberSize bounds the uncompressed size of a single container member.
const MaxMemberSize = 256 << 20

// Container holds the two members of a share archive, read in full.
type Container struct {
	// Payload is the vault database that was signed.
	Payload []byte

	// Signature is the raw signature document text.
	Signature string
}

// zipMagic is the local file header signature every container starts with.
var zipMagic = []byte("PK\x03\x04")

// Extract opens data as a ZIP archive and reads both required members.
//
// It returns [ErrCorruptArchive] if data does not start with a local file
// header, is not a readable archive or a member fails to decompress, and [ErrFormat] if either member is missing
// or exceeds [MaxMemberSize]. Nothing is returned unless both members were
// read completely.
func Extract(data []byte) (Container, error) {
	if !bytes.HasPrefix(data, zipMagic) {
		return Container{}, fmt.Errorf("%w: missing zip signature", ErrCorruptArchive)
	}

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Container{}, fmt.Errorf("%w: %w", ErrCorruptArchive, err)
	}

	payloadFile := lookup(r, PayloadName)
	if payloadFile == nil {
		return Container{}, fmt.Errorf("%w: share file missing %s", ErrFormat, PayloadName)
	}
	signatureFile := lookup(r, SignatureName)
	if signatureFile == nil {
		return Container{}, fmt.Errorf("%w: share file missing %s", ErrFormat, SignatureName)
	}

	payload, err := readMember(payloadFile)
	if err != nil {
		return Container{}, err
	}
	signature, err := readMember(signatureFile)
	if err != nil {
		return Container{}, err
	}

	return Container{Payload: payload, Signature: string(signature)}, nil
}

// Build writes payload and the signature document into a new share
// archive and returns its bytes.
func Build(payload []byte, signature string) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	members := []struct {
		name string
		data []byte
	}{
		{PayloadName, payload},
		{SignatureName, []byte(signature)},
	}
	for _, m := range members {
		fw, err := w.CreateHeader(&zip.FileHeader{Name: m.name, Method: zip.Deflate})
		if err != nil {
			return nil, fmt.Errorf("create member %s: %w", m.name, err)
		}
		if _, err = fw.Write(m.data); err != nil {
			return nil, fmt.Errorf("write member %s: %w", m.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finish share archive: %w", err)
	}

	return buf.Bytes(), nil
}

// lookup returns the first member called name.
func lookup(r *zip.Reader, name string) *zip.File {
	for _, f := range r.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func readMember(f *zip.File) ([]byte, error) {
	if f.UncompressedSize64 > MaxMemberSize {
		return nil, fmt.Errorf("%w: member %s is too large (%d bytes)", ErrFormat, f.Name, f.UncompressedSize64)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open member %s: %w", ErrCorruptArchive, f.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, MaxMemberSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read member %s: %w", ErrCorruptArchive, f.Name, err)
	}
	if len(data) > MaxMemberSize {
		return nil, fmt.Errorf("%w: member %s is too large", ErrFormat, f.Name)
	}

	return data, nil
}
