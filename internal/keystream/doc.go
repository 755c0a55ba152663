// Package keystream implements the repeating-secret XOR transform used to obfuscate
// archive assets.
//
// The secret is a fixed 43-byte sequence. The starting position inside the secret
// is chosen from the MD5 of the seed string, where the seed is the 32-character hex
// digest naming the asset. The transform is its own inverse.
//
// This is obfuscation, not encryption: it offers no confidentiality.
package keystream
