package dsign

import (
	"encoding/hex"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// TestRFC8032TestVector1 checks against RFC 8032 §7.1's first Ed25519
// test vector (the empty message case).
func TestRFC8032TestVector1(t *testing.T) {
	seedHex := "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	vkHex := "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	sigHex := "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b"

	seedBytes, err := hex.DecodeString(seedHex)
	require.NoError(t, err)
	var seed [SeedSize]byte
	copy(seed[:], seedBytes)

	sk := GenKeyFromSeedBytes(&seed)
	vk := sk.DeriveVerificationKey()
	require.Equal(t, vkHex, hex.EncodeToString(vk.RawSerialize()))

	sig := SignBytes(sk, nil)
	require.Equal(t, sigHex, hex.EncodeToString(sig.RawSerialize()))

	require.NoError(t, VerifyBytes(vk, nil, sig))
}

func TestSignVerifyRoundTrip(t *testing.T) {
	var seed [SeedSize]byte
	for i := range seed {
		seed[i] = byte(i)
	}

	sk := GenKeyFromSeedBytes(&seed)
	vk := sk.DeriveVerificationKey()
	msg := []byte("the quick brown fox")

	sig := SignBytes(sk, msg)
	require.NoError(t, VerifyBytes(vk, msg, sig))
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	var seed [SeedSize]byte
	for i := range seed {
		seed[i] = byte(i)
	}

	sk := GenKeyFromSeedBytes(&seed)
	vk := sk.DeriveVerificationKey()

	sig := SignBytes(sk, []byte("original"))
	err := VerifyBytes(vk, []byte("tampered"), sig)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestMLockedSigningKeyMatchesHeapKey(t *testing.T) {
	var seed [SeedSize]byte
	for i := range seed {
		seed[i] = byte(i * 7)
	}

	sk := GenKeyFromSeedBytes(&seed)
	msk, err := GenMLockedKeyFromSeedBytes(&seed)
	require.NoError(t, err)
	defer msk.ForgetSigningKey()

	require.Equal(t, sk.DeriveVerificationKey().RawSerialize(), msk.DeriveVerificationKey().RawSerialize())

	msg := []byte("locked key signing")
	sig := msk.SignBytes(msg)
	require.NoError(t, VerifyBytes(msk.DeriveVerificationKey(), msg, sig))
}

func TestMLockedSigningKeyDirectSerialiseRoundTrip(t *testing.T) {
	var seed [SeedSize]byte
	for i := range seed {
		seed[i] = byte(i * 5)
	}

	msk, err := GenMLockedKeyFromSeedBytes(&seed)
	require.NoError(t, err)
	defer msk.ForgetSigningKey()

	require.Equal(t, SeedSize, msk.SerialisedSize())

	var moved []byte
	err = msk.DirectSerialise(func(ptr *byte, n int) error {
		moved = append(moved, unsafe.Slice(ptr, n)...)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, seed[:], moved)

	i := 0
	restored, err := GenMLockedKeyFromDirectDeserialise(func(outPtr *byte, n int) error {
		copy(unsafe.Slice(outPtr, n), moved[i:i+n])
		i += n
		return nil
	})
	require.NoError(t, err)
	defer restored.ForgetSigningKey()

	require.Equal(t, msk.DeriveVerificationKey().RawSerialize(), restored.DeriveVerificationKey().RawSerialize())
}

func TestMLockedSigningKeyClone(t *testing.T) {
	var seed [SeedSize]byte
	for i := range seed {
		seed[i] = byte(i * 3)
	}

	msk, err := GenMLockedKeyFromSeedBytes(&seed)
	require.NoError(t, err)
	defer msk.ForgetSigningKey()

	clone, err := msk.Clone()
	require.NoError(t, err)
	defer clone.ForgetSigningKey()

	require.Equal(t, msk.DeriveVerificationKey().RawSerialize(), clone.DeriveVerificationKey().RawSerialize())
}
