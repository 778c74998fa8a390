// Package cli implements the gwutil command line: varint and network long
// conversion, access checks and dial prefix normalization on top of the
// gwkit packages. Global options follow the gateway tools' shared debug
// flags (-v, -F, -V, -D).
package cli
