// Command cardano-crypto-vectors prints a handful of golden test
// vectors against which this module's output can be cross-checked by
// hand against the Haskell/Rust references it was ported from.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"gitlab.com/cardano-base/cardano-crypto-go/dsign"
	"gitlab.com/cardano-base/cardano-crypto-go/kes"
	"gitlab.com/cardano-base/cardano-crypto-go/vrf"
)

func main() {
	flag.Parse()
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "cardano-crypto-vectors:", err)
		os.Exit(1)
	}
}

func run(out *os.File) error {
	if err := printEd25519Vector(out); err != nil {
		return err
	}
	fmt.Fprintln(out)
	if err := printVRFVector(out); err != nil {
		return err
	}
	fmt.Fprintln(out)
	printKESSizes(out)
	return nil
}

// printEd25519Vector reproduces RFC 8032 §7.1's first Ed25519 test
// vector (the empty-message case).
func printEd25519Vector(out *os.File) error {
	seedHex := "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	seedBytes, err := hex.DecodeString(seedHex)
	if err != nil {
		return fmt.Errorf("decoding Ed25519 seed vector: %w", err)
	}
	var seed [dsign.SeedSize]byte
	copy(seed[:], seedBytes)

	sk := dsign.GenKeyFromSeedBytes(&seed)
	vk := sk.DeriveVerificationKey()
	sig := dsign.SignBytes(sk, nil)

	fmt.Fprintln(out, "Ed25519 (RFC 8032 §7.1, empty message):")
	fmt.Fprintln(out, "  seed:      ", seedHex)
	fmt.Fprintln(out, "  vk:        ", hex.EncodeToString(vk.RawSerialize()))
	fmt.Fprintln(out, "  signature: ", hex.EncodeToString(sig.RawSerialize()))
	return nil
}

// printVRFVector derives a VRF keypair from the all-zero seed and
// prints the proof and output over a fixed message.
func printVRFVector(out *os.File) error {
	var seed [dsign.SeedSize]byte
	sk := dsign.GenKeyFromSeedBytes(&seed)
	vkBytes := sk.DeriveVerificationKey().RawSerialize()

	var secretKey [vrf.SecretKeySize]byte
	copy(secretKey[:32], seed[:])
	copy(secretKey[32:], vkBytes)

	var publicKey [vrf.PublicKeySize]byte
	copy(publicKey[:], vkBytes)

	msg := []byte("cardano-crypto-vectors")
	proof, err := vrf.Prove(&secretKey, msg)
	if err != nil {
		return fmt.Errorf("VRF prove: %w", err)
	}
	output, err := vrf.Verify(&publicKey, proof, msg)
	if err != nil {
		return fmt.Errorf("VRF verify: %w", err)
	}

	fmt.Fprintln(out, "VRF (all-zero seed, fixed message):")
	fmt.Fprintln(out, "  public key:", hex.EncodeToString(publicKey[:]))
	fmt.Fprintln(out, "  proof:     ", hex.EncodeToString(proof[:]))
	fmt.Fprintln(out, "  output:    ", hex.EncodeToString(output[:]))
	return nil
}

// printKESSizes prints the verification-key and signature sizes for
// the Sum1 and Sum7 instantiations, which grow linearly with tree
// depth per spec component F.
func printKESSizes(out *os.File) {
	sum1 := kes.Sum1()
	sum7 := kes.Sum7()
	compactSum7 := kes.CompactSum7()

	fmt.Fprintln(out, "KES sizes:")
	fmt.Fprintf(out, "  Sum1:        %d periods, vk=%d bytes, sig=%d bytes\n", sum1.TotalPeriods, sum1.VKSize, sum1.SigSize)
	fmt.Fprintf(out, "  Sum7:        %d periods, vk=%d bytes, sig=%d bytes\n", sum7.TotalPeriods, sum7.VKSize, sum7.SigSize)
	fmt.Fprintf(out, "  CompactSum7: %d periods, vk=%d bytes, sig=%d bytes\n", compactSum7.TotalPeriods, compactSum7.VKSize, compactSum7.SigSize)
}
