// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Item is one inventory record: an asset, its metadata and up to two photos.
//
// The same type is returned by the remote and the local backends. Fields that
// only make sense for rows living in the remote table (blob keys, owner and
// session scoping) stay nil for items read from the on-device store.
type Item struct {
	// ID is assigned by whichever store created the record.
	// Zero means the store has not reported it yet (remote insert without
	// re-select).
	ID int64 `json:"id"`

	// NumeroPatrimonio is the asset inventory tag. Always digits only.
	NumeroPatrimonio string `json:"numeroPatrimonio"`

	// NomeObjeto is the display name of the asset. Required.
	NomeObjeto string `json:"nomeObjeto"`

	// LocalizacaoTexto is an optional free-text location description.
	LocalizacaoTexto *string `json:"localizacaoTexto"`

	// FotoObjeto is the retrieval URL of the asset photo.
	// Remote items carry a public or signed blob URL, local items a data URL.
	FotoObjeto *string `json:"fotoObjeto"`

	// FotoLocalizacao is the retrieval URL of the location photo.
	FotoLocalizacao *string `json:"fotoLocalizacao"`

	// FotoObjetoPath is the blob storage key of the asset photo. Remote only.
	// Legacy rows may miss it; the key is then derived from FotoObjeto.
	FotoObjetoPath *string `json:"fotoObjetoPath,omitempty"`

	// FotoLocalizacaoPath is the blob storage key of the location photo.
	FotoLocalizacaoPath *string `json:"fotoLocalizacaoPath,omitempty"`

	// OwnerID identifies the user that created the item. Remote only.
	OwnerID *string `json:"ownerId,omitempty"`

	// OwnerEmail is the e-mail of the creating user. Remote only.
	OwnerEmail *string `json:"ownerEmail,omitempty"`

	// SessionID is the login session token active when the item was created.
	SessionID *string `json:"sessionId,omitempty"`

	// CriadoEm is the creation timestamp in epoch milliseconds.
	CriadoEm int64 `json:"criadoEm"`
}

// ItemDraft carries the user-entered fields of a new item.
type ItemDraft struct {
	NumeroPatrimonio string  `json:"numeroPatrimonio"`
	NomeObjeto       string  `json:"nomeObjeto"`
	LocalizacaoTexto *string `json:"localizacaoTexto,omitempty"`
}

// ItemUpdate describes a partial edit. Only non-nil fields are applied;
// omitted fields keep their previous value.
type ItemUpdate struct {
	NumeroPatrimonio *string `json:"numeroPatrimonio,omitempty"`
	NomeObjeto       *string `json:"nomeObjeto,omitempty"`
	LocalizacaoTexto *string `json:"localizacaoTexto,omitempty"`

	// RemoveFotoObjeto clears both the URL and the key of the asset photo.
	RemoveFotoObjeto bool `json:"removeFotoObjeto,omitempty"`

	// RemoveFotoLocalizacao clears both the URL and the key of the location photo.
	RemoveFotoLocalizacao bool `json:"removeFotoLocalizacao,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u ItemUpdate) IsEmpty() bool {
	return u.NumeroPatrimonio == nil &&
		u.NomeObjeto == nil &&
		u.LocalizacaoTexto == nil &&
		!u.RemoveFotoObjeto &&
		!u.RemoveFotoLocalizacao
}
