// Command gimli24v1 is a small CLI demonstration and benchmark harness for
// the gimli24v1 AEAD and hash primitives.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/sha3"

	aead "gimli24v1/aead/gimli24v1"
	"gimli24v1/gimli"
	hash "gimli24v1/hash/gimli24v1"

	"github.com/google/uuid"
)

func main() {
	runKAT := flag.Bool("kat", false, "print a SHA3-256 fingerprint of the known-answer test file, if present (vectors are not verified)")
	runBench := flag.Bool("bench", false, "benchmark permutation, AEAD, and hash throughput")
	runDemo := flag.Bool("demo", false, "run a single AEAD encrypt/decrypt and hash demonstration")

	flag.Parse()

	switch {
	case *runKAT:
		runKATSuite()
	case *runBench:
		runBenchmark()
	case *runDemo:
		runDemonstration()
	default:
		printHelp()
	}
}

func printHelp() {
	fmt.Println(`gimli24v1 - Gimli permutation / AEAD / hash demonstration CLI

Usage:
  gimli24v1 -demo   Run a single AEAD round trip and hash demonstration
  gimli24v1 -kat    Fingerprint the known-answer test file, if present (vectors are not verified)
  gimli24v1 -bench  Benchmark permutation, AEAD, and hash throughput`)
}

func runDemonstration() {
	key := generateRandomKey()
	nonce := generateRandomNonce()
	ad := []byte("gimli24v1 cli demo")
	plaintext := []byte("Hello, Gimli AEAD!")

	buf := append([]byte(nil), plaintext...)
	tag := aead.Encrypt(&key, &nonce, ad, buf)

	fmt.Println("AEAD demonstration:")
	fmt.Printf("  plaintext:  %s\n", plaintext)
	fmt.Printf("  ciphertext: %x\n", buf)
	fmt.Printf("  tag:        %x\n", tag)

	if err := aead.Decrypt(&key, &nonce, ad, buf, tag); err != nil {
		log.Fatalf("decryption failed: %v", err)
	}
	fmt.Printf("  decrypted:  %s\n", buf)

	digest := hash.Hash(plaintext)
	fmt.Printf("\nhash/gimli24v1 digest of plaintext: %x\n", digest)
}

func runKATSuite() {
	runID := uuid.New()
	fmt.Printf("Checking gimli24v1 AEAD known-answer test file (run %s)\n", runID)

	path := "aead/gimli24v1/testdata/LWC_AEAD_KAT_256_128.txt"
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("no KAT file found at %s: %v\n", path, err)
		fmt.Println("drop the official NIST LWC gimli24v1 KAT file there to fingerprint it")
		return
	}

	fingerprint := sha3.Sum256(data)
	fmt.Printf("KAT file fingerprint (SHA3-256): %x\n", fingerprint)
}

func runBenchmark() {
	fmt.Println("gimli24v1 benchmark")

	var state gimli.State
	rand.Read(state[:])

	const permuteIterations = 200000
	start := time.Now()
	for i := 0; i < permuteIterations; i++ {
		gimli.Permute(&state)
	}
	elapsed := time.Since(start)
	fmt.Printf("  permutation: %d calls in %v (%.2f calls/ms)\n",
		permuteIterations, elapsed, float64(permuteIterations)/float64(elapsed.Milliseconds()))

	key := generateRandomKey()
	nonce := generateRandomNonce()
	ad := []byte("benchmark associated data")
	msg := make([]byte, 4096)
	rand.Read(msg)

	const aeadIterations = 5000
	start = time.Now()
	for i := 0; i < aeadIterations; i++ {
		buf := append([]byte(nil), msg...)
		aead.Encrypt(&key, &nonce, ad, buf)
	}
	elapsed = time.Since(start)
	mbPerSec := float64(aeadIterations*len(msg)) / elapsed.Seconds() / 1e6
	fmt.Printf("  AEAD encrypt: %d blocks of %d bytes in %v (%.2f MB/s)\n",
		aeadIterations, len(msg), elapsed, mbPerSec)

	start = time.Now()
	var lastDigest [hash.Size]byte
	for i := 0; i < aeadIterations; i++ {
		lastDigest = hash.Hash(msg)
	}
	elapsed = time.Since(start)
	mbPerSec = float64(aeadIterations*len(msg)) / elapsed.Seconds() / 1e6
	fmt.Printf("  hash:         %d messages of %d bytes in %v (%.2f MB/s)\n",
		aeadIterations, len(msg), elapsed, mbPerSec)

	fingerprint := sha3.Sum256(lastDigest[:])
	fmt.Printf("  last digest fingerprint (SHA3-256): %x\n", fingerprint)
}

func generateRandomKey() [aead.KeySize]byte {
	var key [aead.KeySize]byte
	if _, err := rand.Read(key[:]); err != nil {
		log.Fatal(err)
	}
	return key
}

func generateRandomNonce() [aead.NonceSize]byte {
	var nonce [aead.NonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		log.Fatal(err)
	}
	return nonce
}
