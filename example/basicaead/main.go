// Command basicaead is a runnable walkthrough of the aead/gimli24v1 API:
// encrypt in place, then decrypt in place and verify the recovered
// plaintext, mirroring the teacher's basic-encryption.go demonstration
// style.
package main

import (
	"crypto/rand"
	"fmt"
	"log"

	aead "gimli24v1/aead/gimli24v1"
)

func main() {
	var key [aead.KeySize]byte
	var nonce [aead.NonceSize]byte
	if _, err := rand.Read(key[:]); err != nil {
		log.Fatal(err)
	}
	if _, err := rand.Read(nonce[:]); err != nil {
		log.Fatal(err)
	}

	associatedData := []byte("routing header v1")
	plaintext := []byte("the quadrant rendezvous is confirmed for dawn")

	buffer := append([]byte(nil), plaintext...)
	tag := aead.Encrypt(&key, &nonce, associatedData, buffer)
	ciphertext := append([]byte(nil), buffer...)

	fmt.Printf("plaintext:  %s\n", plaintext)
	fmt.Printf("ciphertext: %x\n", buffer)
	fmt.Printf("tag:        %x\n", tag)

	if err := aead.Decrypt(&key, &nonce, associatedData, buffer, tag); err != nil {
		log.Fatalf("decrypt: %v", err)
	}
	fmt.Printf("decrypted:  %s\n", buffer)

	tamperedTag := tag
	tamperedTag[0] ^= 0x01
	tamperCheck := append([]byte(nil), ciphertext...)
	if err := aead.Decrypt(&key, &nonce, associatedData, tamperCheck, tamperedTag); err != nil {
		fmt.Printf("tampered tag correctly rejected: %v\n", err)
	} else {
		log.Fatal("tampered tag was accepted, this should never happen")
	}
}
