// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "path"

// PhotoFile is an uploaded image as received from the caller.
type PhotoFile struct {
	// Name is the original file name. Its extension decides the blob key suffix.
	Name string

	// ContentType is the declared MIME type of the file.
	ContentType string

	// Data holds the raw file bytes.
	Data []byte
}

// Size returns the file size in bytes.
func (f *PhotoFile) Size() int64 {
	return int64(len(f.Data))
}

// Ext returns the file name extension without the leading dot.
// An empty string is returned when the name has no extension.
func (f *PhotoFile) Ext() string {
	ext := path.Ext(f.Name)
	if len(ext) < 2 {
		return ""
	}
	return ext[1:]
}

// PhotoFiles groups the optional photos of one add or update call.
type PhotoFiles struct {
	FotoObjeto      *PhotoFile
	FotoLocalizacao *PhotoFile
}

// IsEmpty reports whether no photo was supplied.
func (p PhotoFiles) IsEmpty() bool {
	return p.FotoObjeto == nil && p.FotoLocalizacao == nil
}

// UploadedPhoto is the outcome of a successful blob upload.
type UploadedPhoto struct {
	// URL is the public retrieval URL of the blob.
	URL string `json:"url"`

	// Path is the storage key of the blob inside the bucket.
	Path string `json:"path"`
}
