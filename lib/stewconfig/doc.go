// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

// Package stewconfig reads the operator's stew configuration store, a
// flat key=value file at ~/.stew_config written by "stew -c":
//
//	webserver=pkg.example.com
//	path=/srv/pkgs
//	login=deploy
//
// Keys are matched exactly. Each line is split on its first "=" and
// both halves are trimmed of surrounding whitespace.
// Lines without "=", blank lines, and "#" comments are ignored. When a
// key is repeated the first occurrence wins.
//
// A missing key and a key with an empty value are different results:
// [Store.Lookup] reports presence separately, and [Store.Require]
// returns [ErrKeyNotFound] or [ErrEmptyValue] respectively.
//
// The store is read-only; nothing in this package writes it.
package stewconfig
