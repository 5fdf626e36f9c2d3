// Package catalog implements the product catalog match feature.
//
// It compares the inventory platform's product codes against the
// field-service platform's material codes (normalized, trimmed and
// uppercased) and provisions the first product missing on the
// field-service side: its group becomes a folder (created on demand) and
// the product itself becomes a material under that folder, linked to every
// warehouse both platforms share. Processing one product per run keeps
// each run small; repeated runs drain the unmatched backlog.
package catalog
