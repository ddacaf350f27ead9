package gimli24v1

import (
	"bytes"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	key := [KeySize]byte{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	nonce := [NonceSize]byte{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2}
	ad := []byte("associated data")
	plaintext := []byte("Hello, Gimli AEAD!")

	buf := append([]byte(nil), plaintext...)
	tag := Encrypt(&key, &nonce, ad, buf)

	if bytes.Equal(buf, plaintext) {
		t.Fatal("ciphertext equals plaintext, encryption did nothing")
	}

	if err := Decrypt(&key, &nonce, ad, buf, tag); err != nil {
		t.Fatalf("decryption should succeed: %v", err)
	}
	if !bytes.Equal(buf, plaintext) {
		t.Fatalf("recovered plaintext mismatch: got %q want %q", buf, plaintext)
	}
}

func TestTamperDetectionFlippingTagBit(t *testing.T) {
	key := [KeySize]byte{1}
	nonce := [NonceSize]byte{2}
	ad := []byte("associated data")
	plaintext := []byte("Hello, Gimli AEAD!")

	buf := append([]byte(nil), plaintext...)
	tag := Encrypt(&key, &nonce, ad, buf)

	tag[0] ^= 1

	if err := Decrypt(&key, &nonce, ad, buf, tag); err != ErrAuthenticationFailed {
		t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
	}
}

// TestAuthenticationAcrossAllInputs checks property 4 from the spec: flipping
// a single bit of the tag, ciphertext, AD, nonce, or key causes
// authentication to fail.
func TestAuthenticationAcrossAllInputs(t *testing.T) {
	key := [KeySize]byte{}
	nonce := [NonceSize]byte{}
	for i := range key {
		key[i] = byte(i)
	}
	for i := range nonce {
		nonce[i] = byte(i + 100)
	}
	ad := []byte("some associated data, 31 bytes!")
	plaintext := []byte("a message that spans more than one sixteen byte block")

	ciphertext := append([]byte(nil), plaintext...)
	tag := Encrypt(&key, &nonce, ad, ciphertext)

	t.Run("flip tag bit", func(t *testing.T) {
		buf := append([]byte(nil), ciphertext...)
		badTag := tag
		badTag[len(badTag)-1] ^= 0x80
		if err := Decrypt(&key, &nonce, ad, buf, badTag); err != ErrAuthenticationFailed {
			t.Fatalf("got %v, want ErrAuthenticationFailed", err)
		}
	})

	t.Run("flip ciphertext bit", func(t *testing.T) {
		buf := append([]byte(nil), ciphertext...)
		buf[0] ^= 0x01
		if err := Decrypt(&key, &nonce, ad, buf, tag); err != ErrAuthenticationFailed {
			t.Fatalf("got %v, want ErrAuthenticationFailed", err)
		}
	})

	t.Run("flip AD bit", func(t *testing.T) {
		buf := append([]byte(nil), ciphertext...)
		badAD := append([]byte(nil), ad...)
		badAD[0] ^= 0x01
		if err := Decrypt(&key, &nonce, badAD, buf, tag); err != ErrAuthenticationFailed {
			t.Fatalf("got %v, want ErrAuthenticationFailed", err)
		}
	})

	t.Run("flip nonce bit", func(t *testing.T) {
		buf := append([]byte(nil), ciphertext...)
		badNonce := nonce
		badNonce[0] ^= 0x01
		if err := Decrypt(&key, &badNonce, ad, buf, tag); err != ErrAuthenticationFailed {
			t.Fatalf("got %v, want ErrAuthenticationFailed", err)
		}
	})

	t.Run("flip key bit", func(t *testing.T) {
		buf := append([]byte(nil), ciphertext...)
		badKey := key
		badKey[0] ^= 0x01
		if err := Decrypt(&badKey, &nonce, ad, buf, tag); err != ErrAuthenticationFailed {
			t.Fatalf("got %v, want ErrAuthenticationFailed", err)
		}
	})
}

func TestInPlaceRoundTripVariousSizes(t *testing.T) {
	key := [KeySize]byte{42}
	nonce := [NonceSize]byte{99}
	ad := []byte("metadata")

	sizes := []int{0, 1, 15, 16, 17, 31, 32, 33, 63, 64, 100}
	for _, size := range sizes {
		original := make([]byte, size)
		for i := range original {
			original[i] = byte(i * 7)
		}

		buf := append([]byte(nil), original...)
		tag := Encrypt(&key, &nonce, ad, buf)

		if size > 0 && bytes.Equal(buf, original) {
			t.Fatalf("size %d: ciphertext equals plaintext", size)
		}

		if err := Decrypt(&key, &nonce, ad, buf, tag); err != nil {
			t.Fatalf("size %d: decryption failed: %v", size, err)
		}
		if !bytes.Equal(buf, original) {
			t.Fatalf("size %d: recovered plaintext mismatch", size)
		}
	}
}

// TestEmptyPlaintextTagDependsOnKeyNonceAD addresses the spec's open
// question: since end-of-AD and end-of-message both use domain separation
// byte 0x01, distinguished only by the intervening message absorption,
// verify that an empty message still produces a tag that depends on key,
// nonce, and AD (i.e. it is not some fixed, input-independent constant).
func TestEmptyPlaintextTagDependsOnKeyNonceAD(t *testing.T) {
	baseKey := [KeySize]byte{}
	baseNonce := [NonceSize]byte{}
	ad := []byte("fixed associated data")

	baseTag := Encrypt(&baseKey, &baseNonce, ad, nil)

	keyChanged := baseKey
	keyChanged[0] ^= 0x01
	tagKeyChanged := Encrypt(&keyChanged, &baseNonce, ad, nil)
	if bytes.Equal(baseTag[:], tagKeyChanged[:]) {
		t.Fatal("empty-plaintext tag does not depend on key")
	}

	nonceChanged := baseNonce
	nonceChanged[0] ^= 0x01
	tagNonceChanged := Encrypt(&baseKey, &nonceChanged, ad, nil)
	if bytes.Equal(baseTag[:], tagNonceChanged[:]) {
		t.Fatal("empty-plaintext tag does not depend on nonce")
	}

	adChanged := append([]byte(nil), ad...)
	adChanged[0] ^= 0x01
	tagADChanged := Encrypt(&baseKey, &baseNonce, adChanged, nil)
	if bytes.Equal(baseTag[:], tagADChanged[:]) {
		t.Fatal("empty-plaintext tag does not depend on AD")
	}
}

func TestNilAndEmptyAssociatedDataMatch(t *testing.T) {
	key := [KeySize]byte{7}
	nonce := [NonceSize]byte{8}

	tagWithNilAD := Encrypt(&key, &nonce, nil, nil)
	tagWithEmptyAD := Encrypt(&key, &nonce, []byte{}, nil)

	if tagWithNilAD != tagWithEmptyAD {
		t.Fatal("nil AD and empty-slice AD should behave identically")
	}
}

func TestAssociatedDataExactMultipleOfRate(t *testing.T) {
	key := [KeySize]byte{3}
	nonce := [NonceSize]byte{4}
	ad16 := bytes.Repeat([]byte{0xAB}, rate)
	ad32 := bytes.Repeat([]byte{0xAB}, 2*rate)
	plaintext := []byte("short message")

	buf16 := append([]byte(nil), plaintext...)
	tag16 := Encrypt(&key, &nonce, ad16, buf16)

	buf32 := append([]byte(nil), plaintext...)
	tag32 := Encrypt(&key, &nonce, ad32, buf32)

	if tag16 == tag32 {
		t.Fatal("different AD lengths produced the same tag")
	}

	if err := Decrypt(&key, &nonce, ad16, buf16, tag16); err != nil {
		t.Fatalf("decrypt with 16-byte AD failed: %v", err)
	}
	if !bytes.Equal(buf16, plaintext) {
		t.Fatal("recovered plaintext mismatch for 16-byte AD")
	}
}
