/*
Package keyfile provides provisioning for the shared XOR key: secure
generation, deterministic derivation from a passphrase, and a small binary
file format that stores a key together with its starting offset.

The file format is a fixed header (magic, version, offset, key length)
followed by the raw key bytes. Both sides of an exchange can load the same
file and arrive at an identical key and offset.

Derive uses scrypt, so deriving is deliberately slow. Two parties that agree
on a passphrase and salt out of band can each derive the same key without the
key bytes ever being transmitted.
*/
package keyfile
