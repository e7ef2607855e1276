// SPDX-License-Identifier: GPL-3.0-or-later
package domain

//go:generate mockgen -destination=mocks/propertystore.go -package=mocks . PropertyStore

// PropertyStore is the narrow key/value capability the persisted allow and
// deny lists live behind. Values are serialized JSON arrays of lowercase
// substrings. GetProperty reports whether the key exists at all.
type PropertyStore interface {
	GetProperty(key string) (string, bool, error)
	SetProperty(key, value string) error
}
