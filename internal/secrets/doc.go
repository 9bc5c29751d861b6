// Package secrets provides the cryptographic operations for confgen.
//
// # Envelope Format
//
// Sensitive settings values are encrypted with AES-256 in CBC mode:
//
//  1. The key is SHA-256 of the master secret (the passphrase)
//  2. The plaintext is PKCS#7 padded to a multiple of 16 bytes
//  3. A random 16-byte IV is generated for every call
//  4. The envelope is base64(IV || ciphertext)
//
// Keys are never stored. They are recomputed from the master secret each time,
// which is why the master secret itself is written into the settings file.
//
// # Security Considerations
//
// There is no authentication tag. Decrypt validates the padding and nothing
// else, so a wrong secret or a tampered envelope is usually rejected with
// ErrInvalidPadding but may, rarely, decrypt to garbage.
//
// # Master Secrets
//
// GenerateSecretKey produces a 50 character secret from a CSPRNG.
package secrets
