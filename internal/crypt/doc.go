// Package crypt applies the keystream transform across an asset tree.
//
// A run has two phases. The manifest phase maps every listed logical path onto
// its content-addressed name (<md5>.bin), in the direction requested, and records
// the digests it handled. The stray phase then walks the files directly under the
// input and transforms every file named by a digest the manifest phase did not
// handle, using that name as the keystream seed.
//
// Per-file problems are reported in the returned Summary and never stop a run.
// Only structural problems, such as a missing input or an output of the wrong
// kind, are returned as errors.
package crypt
