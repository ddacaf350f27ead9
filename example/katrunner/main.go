// Command katrunner validates an arbitrary NIST LWC AEAD KAT file against
// this module's gimli24v1 implementation, generalizing the teacher's
// KATTestSuite / InitializeKATOnStartup pattern from synthetic in-memory
// vectors to a real file on disk.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/sha3"

	aead "gimli24v1/aead/gimli24v1"
)

type vector struct {
	count int
	key   [aead.KeySize]byte
	nonce [aead.NonceSize]byte
	pt    []byte
	ad    []byte
	ct    []byte
}

func main() {
	path := flag.String("file", "", "path to a NIST LWC AEAD KAT file (Count/Key/Nonce/PT/AD/CT records)")
	flag.Parse()

	if *path == "" {
		log.Fatal("usage: katrunner -file <path to KAT vector file>")
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("reading %s: %v", *path, err)
	}
	fmt.Printf("KAT file fingerprint (SHA3-256): %x\n", sha3.Sum256(data))

	vectors, err := parse(*path)
	if err != nil {
		log.Fatalf("parsing %s: %v", *path, err)
	}

	passed, failed := 0, 0
	for _, v := range vectors {
		if err := verify(v); err != nil {
			fmt.Printf("Count %d: FAIL (%v)\n", v.count, err)
			failed++
			continue
		}
		passed++
	}

	fmt.Printf("\n%d passed, %d failed, %d total\n", passed, failed, len(vectors))
	if failed > 0 {
		os.Exit(1)
	}
}

func verify(v vector) error {
	buf := append([]byte(nil), v.pt...)
	tag := aead.Encrypt(&v.key, &v.nonce, v.ad, buf)

	if len(v.ct) != len(v.pt)+aead.TagSize {
		return fmt.Errorf("CT field length mismatch: got %d, want %d", len(v.ct), len(v.pt)+aead.TagSize)
	}
	if string(buf) != string(v.ct[:len(v.pt)]) {
		return fmt.Errorf("ciphertext mismatch")
	}
	if string(tag[:]) != string(v.ct[len(v.pt):]) {
		return fmt.Errorf("tag mismatch")
	}

	var gotTag [aead.TagSize]byte
	copy(gotTag[:], v.ct[len(v.pt):])
	if err := aead.Decrypt(&v.key, &v.nonce, v.ad, buf, gotTag); err != nil {
		return fmt.Errorf("decryption: %w", err)
	}
	if string(buf) != string(v.pt) {
		return fmt.Errorf("recovered plaintext mismatch")
	}
	return nil
}

func parse(path string) ([]vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var vectors []vector
	var cur vector
	var haveKey bool

	flush := func() {
		if haveKey {
			vectors = append(vectors, cur)
		}
		cur = vector{}
		haveKey = false
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "Count = "):
			cur.count, _ = strconv.Atoi(strings.TrimPrefix(line, "Count = "))
		case strings.HasPrefix(line, "Key = "):
			b, err := hex.DecodeString(strings.TrimPrefix(line, "Key = "))
			if err != nil || len(b) != aead.KeySize {
				return nil, fmt.Errorf("count %d: bad key field", cur.count)
			}
			copy(cur.key[:], b)
			haveKey = true
		case strings.HasPrefix(line, "Nonce = "):
			b, err := hex.DecodeString(strings.TrimPrefix(line, "Nonce = "))
			if err != nil || len(b) != aead.NonceSize {
				return nil, fmt.Errorf("count %d: bad nonce field", cur.count)
			}
			copy(cur.nonce[:], b)
		case strings.HasPrefix(line, "PT = "):
			b, err := hex.DecodeString(strings.TrimPrefix(line, "PT = "))
			if err != nil {
				return nil, fmt.Errorf("count %d: bad PT field", cur.count)
			}
			cur.pt = b
		case strings.HasPrefix(line, "AD = "):
			b, err := hex.DecodeString(strings.TrimPrefix(line, "AD = "))
			if err != nil {
				return nil, fmt.Errorf("count %d: bad AD field", cur.count)
			}
			cur.ad = b
		case strings.HasPrefix(line, "CT = "):
			b, err := hex.DecodeString(strings.TrimPrefix(line, "CT = "))
			if err != nil {
				return nil, fmt.Errorf("count %d: bad CT field", cur.count)
			}
			cur.ct = b
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vectors, nil
}
