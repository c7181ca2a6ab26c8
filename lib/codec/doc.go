// Package codec provides snapshot serialization for the structured record
// stores. It defines a common interface and several implementations so the
// on-disk format can be chosen per invocation without touching the stores.
//
// Key Components:
//
//   - ICodec: Core interface that all codec implementations must satisfy.
//     Codecs stream to an io.Writer and from an io.Reader, so they can be used
//     directly on files.
//
//   - jsonCodecImpl: Indented JSON. Human readable and the default format.
//
//   - yamlCodecImpl: YAML via gopkg.in/yaml.v3. Convenient for hand-edited
//     fixtures.
//
//   - gobCodecImpl: Go's gob encoding. Compact, but only readable by Go programs.
//
// Codecs never validate the decoded content. Snapshot types carry a version
// field that the owning package checks after decoding.
//
// Thread Safety:
//
//	All codec implementations are stateless and safe for concurrent use.
//
// Usage:
//
//	c, err := codec.ForFormat(common.FormatYAML)
//	err = c.Encode(file, snapshot)
//	// ...
//	var loaded Snapshot
//	err = c.Decode(file, &loaded)
package codec
