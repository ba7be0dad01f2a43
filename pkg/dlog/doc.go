// Package dlog provides a non-interactive zero-knowledge proof of knowledge of
// a discrete logarithm (a Schnorr proof made non-interactive with the
// Fiat-Shamir transform).
//
// A prover holding x with Y = x·B produces a Proof (R, s) where
//
//	R = k·B, c = H(sid || be32(pid) || B || Y || R), s = k + x·c
//
// and a verifier accepts iff s·B == R + c·Y. The session identifier sid and
// participant identifier pid are part of the hash, so a proof produced for one
// (session, participant) pair fails verification under any other.
//
// The group and hash are chosen through a Suite. DefaultSuite is secp256k1
// with SHA-256.
//
// Example
//
//	suite := dlog.DefaultSuite()
//	x, Y, _ := suite.GenerateKey()
//	proof, err := suite.GenerateProof("session_1", 1, x, Y, suite.Generator())
//	if err != nil {
//	    // only ErrDerivationFailed or a randomness failure
//	}
//	ok, err := suite.VerifyProof(proof, "session_1", 1, Y, suite.Generator())
//
// VerifyProof returns (false, nil) for any proof that does not hold. It
// returns ErrDerivationFailed only when the challenge could not be derived,
// which callers must not treat as an ordinary rejection.
package dlog
