// Package bishop implements the drunken-bishop fingerprint walk.
//
// A fingerprint (a hex digest) is decoded into a sequence of diagonal
// moves, two bits per move, and replayed on a bounded board whose cells
// count how often the bishop lands on them:
//
//   - [Decode]: fingerprint to move sequence
//   - [Board]: wall-clamped walk with per-cell visit counts
//   - [Draw]: decode, walk and seal in one call
//
// # Bit order
//
// Bytes are consumed left to right, but the four bit pairs inside each
// byte are consumed least-significant pair first. This matches the
// ordering used by OpenSSH key randomart and must not be "fixed".
//
// # Thread Safety
//
// Board instances are not thread-safe. Distinct walks share no state, so
// concurrent walks on separate boards need no synchronization.
package bishop
