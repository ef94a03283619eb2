// Package dict provides a deduplicating dictionary of string values.
//
// Engines that store repetitive strings (tags, enum-like columns, URLs)
// replace each occurrence with a 4-byte Handle and keep every distinct
// content exactly once:
//
//	d := dict.New()
//	h, err := d.PutString("production")  // first occurrence stores
//	h2, _ := d.PutString("production")   // later ones return the same handle
//	v, ok := d.Get(h)
//
// Content bytes live in an arena owned by the dictionary, values in a
// dense handle-addressed table. Everything a Dict hands out stays valid
// until Reset.
package dict
