// Package hash provides the checksum used to verify snapshot payload
// integrity.
//
// Snapshots record a CRC32-Castagnoli (CRC32C) checksum of the encoded
// payload so a truncated or corrupted stream is detected before
// decoding. CRC32C is hardware-accelerated on x86 (SSE4.2) and ARM and
// is the checksum used by iSCSI, RocksDB and LevelDB for the same
// purpose.
package hash
